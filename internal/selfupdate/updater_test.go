package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin is one universal archive", "darwin", "amd64", "moodlog_Darwin_all.tar.gz", false},
		{"darwin arm64 same archive", "darwin", "arm64", "moodlog_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "moodlog_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "moodlog_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "moodlog_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "moodlog_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "moodlog_Windows_arm64.zip", false},
		{"unsupported os", "plan9", "amd64", "", true},
		{"unsupported arch", "linux", "riscv64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAssetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksumManifest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "two entries",
			input: "11aa  moodlog_Linux_x86_64.tar.gz\n22bb  moodlog_Windows_x86_64.zip\n",
			want: map[string]string{
				"moodlog_Linux_x86_64.tar.gz": "11aa",
				"moodlog_Windows_x86_64.zip":  "22bb",
			},
		},
		{
			name:  "empty manifest",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "junk lines skipped",
			input: "33cc  good.tar.gz\nnot-a-pair\n   \none two three\n44dd  also-good.zip\n",
			want: map[string]string{
				"good.tar.gz":   "33cc",
				"also-good.zip": "44dd",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksumManifest([]byte(tt.input)))
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("release archive bytes")
	h := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, hex.EncodeToString(make([]byte, sha256.Size)))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v0.4.1", "v0.4.1"},
		{"0.4.1", "v0.4.1"},
		{"", "v0.0.0"},
		{"not-a-version", "v0.0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in), tt.in)
	}
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("\x7fELF moodlog payload")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "moodlog", binary)
		got, err := extractBinary(archive, "moodlog_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("archive without the binary", func(t *testing.T) {
		archive := buildTarGz(t, "LICENSE", binary)
		_, err := extractBinary(archive, "moodlog_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "moodlog")
	require.NoError(t, os.WriteFile(target, []byte("v0.3.0 binary"), 0755))

	next := []byte("v0.4.1 binary")
	h := sha256.Sum256(next)

	require.NoError(t, applyUpdate(next, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	// The staged file inherits the target's permissions before the swap.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// fakeRelease serves the GitHub API and download endpoints for one
// published release tag.
type fakeRelease struct {
	tag      string
	archive  []byte
	manifest string
}

func (f fakeRelease) server(t *testing.T) *httptest.Server {
	t.Helper()
	asset, err := releaseAsset()
	require.NoError(t, err)
	download := fmt.Sprintf("/abhisek/moodlog/releases/download/%s/", f.tag)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/abhisek/moodlog/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/releases/%s"}`, f.tag, f.tag)
		case download + asset:
			if f.archive != nil {
				_, _ = w.Write(f.archive)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		case download + "checksums.txt":
			if f.manifest != "" {
				_, _ = w.Write([]byte(f.manifest))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	asset, err := releaseAsset()
	require.NoError(t, err)

	binary := []byte("moodlog v0.4.1")
	archive := buildTarGz(t, "moodlog", binary)
	archiveHash := sha256.Sum256(archive)
	manifest := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	t.Run("full pipeline replaces the binary", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "moodlog")
		require.NoError(t, os.WriteFile(execPath, []byte("moodlog v0.3.0"), 0755))

		srv := fakeRelease{tag: "v0.4.1", archive: archive, manifest: manifest}.server(t)
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses to update", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on the latest release", func(t *testing.T) {
		srv := fakeRelease{tag: "v0.3.0"}.server(t)
		checker := NewChecker(WithBaseURL(srv.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("manifest hash mismatch aborts", func(t *testing.T) {
		badManifest := fmt.Sprintf("%s  %s\n", hex.EncodeToString(make([]byte, sha256.Size)), asset)
		srv := fakeRelease{tag: "v0.4.1", archive: archive, manifest: badManifest}.server(t)
		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing release asset", func(t *testing.T) {
		srv := fakeRelease{tag: "v0.4.1"}.server(t)
		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v0.3.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
