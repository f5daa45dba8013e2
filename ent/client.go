// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/moodlog/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent/checklistentry"
	"github.com/abhisek/moodlog/ent/customentry"
	"github.com/abhisek/moodlog/ent/gad7entry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChecklistEntry is the client for interacting with the ChecklistEntry builders.
	ChecklistEntry *ChecklistEntryClient
	// CustomEntry is the client for interacting with the CustomEntry builders.
	CustomEntry *CustomEntryClient
	// Gad7Entry is the client for interacting with the Gad7Entry builders.
	Gad7Entry *Gad7EntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChecklistEntry = NewChecklistEntryClient(c.config)
	c.CustomEntry = NewCustomEntryClient(c.config)
	c.Gad7Entry = NewGad7EntryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ChecklistEntry: NewChecklistEntryClient(cfg),
		CustomEntry:    NewCustomEntryClient(cfg),
		Gad7Entry:      NewGad7EntryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		ChecklistEntry: NewChecklistEntryClient(cfg),
		CustomEntry:    NewCustomEntryClient(cfg),
		Gad7Entry:      NewGad7EntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChecklistEntry.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ChecklistEntry.Use(hooks...)
	c.CustomEntry.Use(hooks...)
	c.Gad7Entry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChecklistEntry.Intercept(interceptors...)
	c.CustomEntry.Intercept(interceptors...)
	c.Gad7Entry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChecklistEntryMutation:
		return c.ChecklistEntry.mutate(ctx, m)
	case *CustomEntryMutation:
		return c.CustomEntry.mutate(ctx, m)
	case *Gad7EntryMutation:
		return c.Gad7Entry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChecklistEntryClient is a client for the ChecklistEntry schema.
type ChecklistEntryClient struct {
	config
}

// NewChecklistEntryClient returns a client for the ChecklistEntry from the given config.
func NewChecklistEntryClient(c config) *ChecklistEntryClient {
	return &ChecklistEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checklistentry.Hooks(f(g(h())))`.
func (c *ChecklistEntryClient) Use(hooks ...Hook) {
	c.hooks.ChecklistEntry = append(c.hooks.ChecklistEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checklistentry.Intercept(f(g(h())))`.
func (c *ChecklistEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChecklistEntry = append(c.inters.ChecklistEntry, interceptors...)
}

// Create returns a builder for creating a ChecklistEntry entity.
func (c *ChecklistEntryClient) Create() *ChecklistEntryCreate {
	mutation := newChecklistEntryMutation(c.config, OpCreate)
	return &ChecklistEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChecklistEntry entities.
func (c *ChecklistEntryClient) CreateBulk(builders ...*ChecklistEntryCreate) *ChecklistEntryCreateBulk {
	return &ChecklistEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChecklistEntryClient) MapCreateBulk(slice any, setFunc func(*ChecklistEntryCreate, int)) *ChecklistEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChecklistEntryCreateBulk{err: fmt.Errorf("calling to ChecklistEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChecklistEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChecklistEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChecklistEntry.
func (c *ChecklistEntryClient) Update() *ChecklistEntryUpdate {
	mutation := newChecklistEntryMutation(c.config, OpUpdate)
	return &ChecklistEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChecklistEntryClient) UpdateOne(_m *ChecklistEntry) *ChecklistEntryUpdateOne {
	mutation := newChecklistEntryMutation(c.config, OpUpdateOne, withChecklistEntry(_m))
	return &ChecklistEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChecklistEntryClient) UpdateOneID(id int) *ChecklistEntryUpdateOne {
	mutation := newChecklistEntryMutation(c.config, OpUpdateOne, withChecklistEntryID(id))
	return &ChecklistEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChecklistEntry.
func (c *ChecklistEntryClient) Delete() *ChecklistEntryDelete {
	mutation := newChecklistEntryMutation(c.config, OpDelete)
	return &ChecklistEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChecklistEntryClient) DeleteOne(_m *ChecklistEntry) *ChecklistEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChecklistEntryClient) DeleteOneID(id int) *ChecklistEntryDeleteOne {
	builder := c.Delete().Where(checklistentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChecklistEntryDeleteOne{builder}
}

// Query returns a query builder for ChecklistEntry.
func (c *ChecklistEntryClient) Query() *ChecklistEntryQuery {
	return &ChecklistEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChecklistEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ChecklistEntry entity by its id.
func (c *ChecklistEntryClient) Get(ctx context.Context, id int) (*ChecklistEntry, error) {
	return c.Query().Where(checklistentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChecklistEntryClient) GetX(ctx context.Context, id int) *ChecklistEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChecklistEntryClient) Hooks() []Hook {
	return c.hooks.ChecklistEntry
}

// Interceptors returns the client interceptors.
func (c *ChecklistEntryClient) Interceptors() []Interceptor {
	return c.inters.ChecklistEntry
}

func (c *ChecklistEntryClient) mutate(ctx context.Context, m *ChecklistEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChecklistEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChecklistEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChecklistEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChecklistEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChecklistEntry mutation op: %q", m.Op())
	}
}

// CustomEntryClient is a client for the CustomEntry schema.
type CustomEntryClient struct {
	config
}

// NewCustomEntryClient returns a client for the CustomEntry from the given config.
func NewCustomEntryClient(c config) *CustomEntryClient {
	return &CustomEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customentry.Hooks(f(g(h())))`.
func (c *CustomEntryClient) Use(hooks ...Hook) {
	c.hooks.CustomEntry = append(c.hooks.CustomEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customentry.Intercept(f(g(h())))`.
func (c *CustomEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CustomEntry = append(c.inters.CustomEntry, interceptors...)
}

// Create returns a builder for creating a CustomEntry entity.
func (c *CustomEntryClient) Create() *CustomEntryCreate {
	mutation := newCustomEntryMutation(c.config, OpCreate)
	return &CustomEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CustomEntry entities.
func (c *CustomEntryClient) CreateBulk(builders ...*CustomEntryCreate) *CustomEntryCreateBulk {
	return &CustomEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomEntryClient) MapCreateBulk(slice any, setFunc func(*CustomEntryCreate, int)) *CustomEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomEntryCreateBulk{err: fmt.Errorf("calling to CustomEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CustomEntry.
func (c *CustomEntryClient) Update() *CustomEntryUpdate {
	mutation := newCustomEntryMutation(c.config, OpUpdate)
	return &CustomEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomEntryClient) UpdateOne(_m *CustomEntry) *CustomEntryUpdateOne {
	mutation := newCustomEntryMutation(c.config, OpUpdateOne, withCustomEntry(_m))
	return &CustomEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomEntryClient) UpdateOneID(id int) *CustomEntryUpdateOne {
	mutation := newCustomEntryMutation(c.config, OpUpdateOne, withCustomEntryID(id))
	return &CustomEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CustomEntry.
func (c *CustomEntryClient) Delete() *CustomEntryDelete {
	mutation := newCustomEntryMutation(c.config, OpDelete)
	return &CustomEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomEntryClient) DeleteOne(_m *CustomEntry) *CustomEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomEntryClient) DeleteOneID(id int) *CustomEntryDeleteOne {
	builder := c.Delete().Where(customentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomEntryDeleteOne{builder}
}

// Query returns a query builder for CustomEntry.
func (c *CustomEntryClient) Query() *CustomEntryQuery {
	return &CustomEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CustomEntry entity by its id.
func (c *CustomEntryClient) Get(ctx context.Context, id int) (*CustomEntry, error) {
	return c.Query().Where(customentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomEntryClient) GetX(ctx context.Context, id int) *CustomEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CustomEntryClient) Hooks() []Hook {
	return c.hooks.CustomEntry
}

// Interceptors returns the client interceptors.
func (c *CustomEntryClient) Interceptors() []Interceptor {
	return c.inters.CustomEntry
}

func (c *CustomEntryClient) mutate(ctx context.Context, m *CustomEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CustomEntry mutation op: %q", m.Op())
	}
}

// Gad7EntryClient is a client for the Gad7Entry schema.
type Gad7EntryClient struct {
	config
}

// NewGad7EntryClient returns a client for the Gad7Entry from the given config.
func NewGad7EntryClient(c config) *Gad7EntryClient {
	return &Gad7EntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gad7entry.Hooks(f(g(h())))`.
func (c *Gad7EntryClient) Use(hooks ...Hook) {
	c.hooks.Gad7Entry = append(c.hooks.Gad7Entry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gad7entry.Intercept(f(g(h())))`.
func (c *Gad7EntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Gad7Entry = append(c.inters.Gad7Entry, interceptors...)
}

// Create returns a builder for creating a Gad7Entry entity.
func (c *Gad7EntryClient) Create() *Gad7EntryCreate {
	mutation := newGad7EntryMutation(c.config, OpCreate)
	return &Gad7EntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Gad7Entry entities.
func (c *Gad7EntryClient) CreateBulk(builders ...*Gad7EntryCreate) *Gad7EntryCreateBulk {
	return &Gad7EntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *Gad7EntryClient) MapCreateBulk(slice any, setFunc func(*Gad7EntryCreate, int)) *Gad7EntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &Gad7EntryCreateBulk{err: fmt.Errorf("calling to Gad7EntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*Gad7EntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &Gad7EntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Gad7Entry.
func (c *Gad7EntryClient) Update() *Gad7EntryUpdate {
	mutation := newGad7EntryMutation(c.config, OpUpdate)
	return &Gad7EntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *Gad7EntryClient) UpdateOne(_m *Gad7Entry) *Gad7EntryUpdateOne {
	mutation := newGad7EntryMutation(c.config, OpUpdateOne, withGad7Entry(_m))
	return &Gad7EntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *Gad7EntryClient) UpdateOneID(id int) *Gad7EntryUpdateOne {
	mutation := newGad7EntryMutation(c.config, OpUpdateOne, withGad7EntryID(id))
	return &Gad7EntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Gad7Entry.
func (c *Gad7EntryClient) Delete() *Gad7EntryDelete {
	mutation := newGad7EntryMutation(c.config, OpDelete)
	return &Gad7EntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *Gad7EntryClient) DeleteOne(_m *Gad7Entry) *Gad7EntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *Gad7EntryClient) DeleteOneID(id int) *Gad7EntryDeleteOne {
	builder := c.Delete().Where(gad7entry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &Gad7EntryDeleteOne{builder}
}

// Query returns a query builder for Gad7Entry.
func (c *Gad7EntryClient) Query() *Gad7EntryQuery {
	return &Gad7EntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGad7Entry},
		inters: c.Interceptors(),
	}
}

// Get returns a Gad7Entry entity by its id.
func (c *Gad7EntryClient) Get(ctx context.Context, id int) (*Gad7Entry, error) {
	return c.Query().Where(gad7entry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *Gad7EntryClient) GetX(ctx context.Context, id int) *Gad7Entry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *Gad7EntryClient) Hooks() []Hook {
	return c.hooks.Gad7Entry
}

// Interceptors returns the client interceptors.
func (c *Gad7EntryClient) Interceptors() []Interceptor {
	return c.inters.Gad7Entry
}

func (c *Gad7EntryClient) mutate(ctx context.Context, m *Gad7EntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&Gad7EntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&Gad7EntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&Gad7EntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&Gad7EntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Gad7Entry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChecklistEntry, CustomEntry, Gad7Entry []ent.Hook
	}
	inters struct {
		ChecklistEntry, CustomEntry, Gad7Entry []ent.Interceptor
	}
)
