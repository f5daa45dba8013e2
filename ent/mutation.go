// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent/checklistentry"
	"github.com/abhisek/moodlog/ent/customentry"
	"github.com/abhisek/moodlog/ent/gad7entry"
	"github.com/abhisek/moodlog/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChecklistEntry = "ChecklistEntry"
	TypeCustomEntry    = "CustomEntry"
	TypeGad7Entry      = "Gad7Entry"
)

// ChecklistEntryMutation represents an operation that mutates the ChecklistEntry nodes in the graph.
type ChecklistEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	score         *int
	addscore      *int
	category      *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChecklistEntry, error)
	predicates    []predicate.ChecklistEntry
}

var _ ent.Mutation = (*ChecklistEntryMutation)(nil)

// checklistentryOption allows management of the mutation configuration using functional options.
type checklistentryOption func(*ChecklistEntryMutation)

// newChecklistEntryMutation creates new mutation for the ChecklistEntry entity.
func newChecklistEntryMutation(c config, op Op, opts ...checklistentryOption) *ChecklistEntryMutation {
	m := &ChecklistEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeChecklistEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChecklistEntryID sets the ID field of the mutation.
func withChecklistEntryID(id int) checklistentryOption {
	return func(m *ChecklistEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ChecklistEntry
		)
		m.oldValue = func(ctx context.Context) (*ChecklistEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChecklistEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChecklistEntry sets the old ChecklistEntry of the mutation.
func withChecklistEntry(node *ChecklistEntry) checklistentryOption {
	return func(m *ChecklistEntryMutation) {
		m.oldValue = func(context.Context) (*ChecklistEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChecklistEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChecklistEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChecklistEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChecklistEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChecklistEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScore sets the "score" field.
func (m *ChecklistEntryMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ChecklistEntryMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ChecklistEntry entity.
// If the ChecklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistEntryMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ChecklistEntryMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ChecklistEntryMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ChecklistEntryMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCategory sets the "category" field.
func (m *ChecklistEntryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ChecklistEntryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ChecklistEntry entity.
// If the ChecklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistEntryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ChecklistEntryMutation) ResetCategory() {
	m.category = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ChecklistEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChecklistEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChecklistEntry entity.
// If the ChecklistEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChecklistEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ChecklistEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the ChecklistEntryMutation builder.
func (m *ChecklistEntryMutation) Where(ps ...predicate.ChecklistEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChecklistEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChecklistEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChecklistEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChecklistEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChecklistEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChecklistEntry).
func (m *ChecklistEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChecklistEntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.score != nil {
		fields = append(fields, checklistentry.FieldScore)
	}
	if m.category != nil {
		fields = append(fields, checklistentry.FieldCategory)
	}
	if m.timestamp != nil {
		fields = append(fields, checklistentry.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChecklistEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checklistentry.FieldScore:
		return m.Score()
	case checklistentry.FieldCategory:
		return m.Category()
	case checklistentry.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChecklistEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checklistentry.FieldScore:
		return m.OldScore(ctx)
	case checklistentry.FieldCategory:
		return m.OldCategory(ctx)
	case checklistentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown ChecklistEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChecklistEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checklistentry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case checklistentry.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case checklistentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown ChecklistEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChecklistEntryMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, checklistentry.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChecklistEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checklistentry.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChecklistEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checklistentry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ChecklistEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChecklistEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChecklistEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChecklistEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChecklistEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChecklistEntryMutation) ResetField(name string) error {
	switch name {
	case checklistentry.FieldScore:
		m.ResetScore()
		return nil
	case checklistentry.FieldCategory:
		m.ResetCategory()
		return nil
	case checklistentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ChecklistEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChecklistEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChecklistEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChecklistEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChecklistEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChecklistEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChecklistEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChecklistEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChecklistEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChecklistEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChecklistEntry edge %s", name)
}

// CustomEntryMutation represents an operation that mutates the CustomEntry nodes in the graph.
type CustomEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	score         *int
	addscore      *int
	category      *string
	timestamp     *time.Time
	instrument_id *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CustomEntry, error)
	predicates    []predicate.CustomEntry
}

var _ ent.Mutation = (*CustomEntryMutation)(nil)

// customentryOption allows management of the mutation configuration using functional options.
type customentryOption func(*CustomEntryMutation)

// newCustomEntryMutation creates new mutation for the CustomEntry entity.
func newCustomEntryMutation(c config, op Op, opts ...customentryOption) *CustomEntryMutation {
	m := &CustomEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomEntryID sets the ID field of the mutation.
func withCustomEntryID(id int) customentryOption {
	return func(m *CustomEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CustomEntry
		)
		m.oldValue = func(ctx context.Context) (*CustomEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CustomEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomEntry sets the old CustomEntry of the mutation.
func withCustomEntry(node *CustomEntry) customentryOption {
	return func(m *CustomEntryMutation) {
		m.oldValue = func(context.Context) (*CustomEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CustomEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScore sets the "score" field.
func (m *CustomEntryMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *CustomEntryMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the CustomEntry entity.
// If the CustomEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomEntryMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *CustomEntryMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *CustomEntryMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *CustomEntryMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCategory sets the "category" field.
func (m *CustomEntryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CustomEntryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CustomEntry entity.
// If the CustomEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomEntryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CustomEntryMutation) ResetCategory() {
	m.category = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CustomEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CustomEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CustomEntry entity.
// If the CustomEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CustomEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetInstrumentID sets the "instrument_id" field.
func (m *CustomEntryMutation) SetInstrumentID(s string) {
	m.instrument_id = &s
}

// InstrumentID returns the value of the "instrument_id" field in the mutation.
func (m *CustomEntryMutation) InstrumentID() (r string, exists bool) {
	v := m.instrument_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrumentID returns the old "instrument_id" field's value of the CustomEntry entity.
// If the CustomEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomEntryMutation) OldInstrumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrumentID: %w", err)
	}
	return oldValue.InstrumentID, nil
}

// ResetInstrumentID resets all changes to the "instrument_id" field.
func (m *CustomEntryMutation) ResetInstrumentID() {
	m.instrument_id = nil
}

// Where appends a list predicates to the CustomEntryMutation builder.
func (m *CustomEntryMutation) Where(ps ...predicate.CustomEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CustomEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CustomEntry).
func (m *CustomEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomEntryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.score != nil {
		fields = append(fields, customentry.FieldScore)
	}
	if m.category != nil {
		fields = append(fields, customentry.FieldCategory)
	}
	if m.timestamp != nil {
		fields = append(fields, customentry.FieldTimestamp)
	}
	if m.instrument_id != nil {
		fields = append(fields, customentry.FieldInstrumentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customentry.FieldScore:
		return m.Score()
	case customentry.FieldCategory:
		return m.Category()
	case customentry.FieldTimestamp:
		return m.Timestamp()
	case customentry.FieldInstrumentID:
		return m.InstrumentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customentry.FieldScore:
		return m.OldScore(ctx)
	case customentry.FieldCategory:
		return m.OldCategory(ctx)
	case customentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case customentry.FieldInstrumentID:
		return m.OldInstrumentID(ctx)
	}
	return nil, fmt.Errorf("unknown CustomEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customentry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case customentry.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case customentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case customentry.FieldInstrumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrumentID(v)
		return nil
	}
	return fmt.Errorf("unknown CustomEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomEntryMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, customentry.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case customentry.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case customentry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown CustomEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CustomEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomEntryMutation) ResetField(name string) error {
	switch name {
	case customentry.FieldScore:
		m.ResetScore()
		return nil
	case customentry.FieldCategory:
		m.ResetCategory()
		return nil
	case customentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case customentry.FieldInstrumentID:
		m.ResetInstrumentID()
		return nil
	}
	return fmt.Errorf("unknown CustomEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CustomEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CustomEntry edge %s", name)
}

// Gad7EntryMutation represents an operation that mutates the Gad7Entry nodes in the graph.
type Gad7EntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	score         *int
	addscore      *int
	category      *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Gad7Entry, error)
	predicates    []predicate.Gad7Entry
}

var _ ent.Mutation = (*Gad7EntryMutation)(nil)

// gad7entryOption allows management of the mutation configuration using functional options.
type gad7entryOption func(*Gad7EntryMutation)

// newGad7EntryMutation creates new mutation for the Gad7Entry entity.
func newGad7EntryMutation(c config, op Op, opts ...gad7entryOption) *Gad7EntryMutation {
	m := &Gad7EntryMutation{
		config:        c,
		op:            op,
		typ:           TypeGad7Entry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGad7EntryID sets the ID field of the mutation.
func withGad7EntryID(id int) gad7entryOption {
	return func(m *Gad7EntryMutation) {
		var (
			err   error
			once  sync.Once
			value *Gad7Entry
		)
		m.oldValue = func(ctx context.Context) (*Gad7Entry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Gad7Entry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGad7Entry sets the old Gad7Entry of the mutation.
func withGad7Entry(node *Gad7Entry) gad7entryOption {
	return func(m *Gad7EntryMutation) {
		m.oldValue = func(context.Context) (*Gad7Entry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m Gad7EntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m Gad7EntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *Gad7EntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *Gad7EntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Gad7Entry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScore sets the "score" field.
func (m *Gad7EntryMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *Gad7EntryMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Gad7Entry entity.
// If the Gad7Entry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *Gad7EntryMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *Gad7EntryMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *Gad7EntryMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *Gad7EntryMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCategory sets the "category" field.
func (m *Gad7EntryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *Gad7EntryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Gad7Entry entity.
// If the Gad7Entry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *Gad7EntryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *Gad7EntryMutation) ResetCategory() {
	m.category = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *Gad7EntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *Gad7EntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Gad7Entry entity.
// If the Gad7Entry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *Gad7EntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *Gad7EntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the Gad7EntryMutation builder.
func (m *Gad7EntryMutation) Where(ps ...predicate.Gad7Entry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the Gad7EntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *Gad7EntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Gad7Entry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *Gad7EntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *Gad7EntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Gad7Entry).
func (m *Gad7EntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *Gad7EntryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.score != nil {
		fields = append(fields, gad7entry.FieldScore)
	}
	if m.category != nil {
		fields = append(fields, gad7entry.FieldCategory)
	}
	if m.timestamp != nil {
		fields = append(fields, gad7entry.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *Gad7EntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gad7entry.FieldScore:
		return m.Score()
	case gad7entry.FieldCategory:
		return m.Category()
	case gad7entry.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *Gad7EntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gad7entry.FieldScore:
		return m.OldScore(ctx)
	case gad7entry.FieldCategory:
		return m.OldCategory(ctx)
	case gad7entry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Gad7Entry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *Gad7EntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gad7entry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case gad7entry.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case gad7entry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Gad7Entry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *Gad7EntryMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, gad7entry.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *Gad7EntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gad7entry.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *Gad7EntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gad7entry.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Gad7Entry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *Gad7EntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *Gad7EntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *Gad7EntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Gad7Entry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *Gad7EntryMutation) ResetField(name string) error {
	switch name {
	case gad7entry.FieldScore:
		m.ResetScore()
		return nil
	case gad7entry.FieldCategory:
		m.ResetCategory()
		return nil
	case gad7entry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Gad7Entry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *Gad7EntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *Gad7EntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *Gad7EntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *Gad7EntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *Gad7EntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *Gad7EntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *Gad7EntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Gad7Entry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *Gad7EntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Gad7Entry edge %s", name)
}
