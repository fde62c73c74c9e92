package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lexkit/internal/source"
	"lexkit/internal/token"
)

// Current schema version - increment when tokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores scanned token streams on disk, keyed by the sha256 hash
// of the file content. Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedToken is the flat msgpack projection of one token.
type cachedToken struct {
	Kind  uint8
	Row   int
	Col   int
	Path  string
	Text  string
	Int   string
	Float float64
}

// tokenPayload is the versioned on-disk record for one file.
type tokenPayload struct {
	Schema uint16
	Path   string
	Hash   [32]byte
	Tokens []cachedToken
}

// OpenTokenCache initializes a cache at the standard user cache location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenTokenCacheAt(filepath.Join(base, app))
}

// OpenTokenCacheAt initializes a cache rooted at an explicit directory.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put serializes the token stream for the file's current content hash.
// Writes go through a temp file and an atomic rename.
func (c *TokenCache) Put(file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &tokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   file.Path,
		Hash:   file.Hash,
		Tokens: toCached(tokens),
	}

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck // gone already after the rename

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get looks up the token stream for the file's content hash. A schema or
// hash mismatch is a miss, not an error.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file.Hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false, nil
	}

	tokens, err := fromCached(payload.Tokens)
	if err != nil {
		return nil, false, err
	}
	return tokens, true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func toCached(tokens []token.Token) []cachedToken {
	out := make([]cachedToken, len(tokens))
	for i, tok := range tokens {
		rec := cachedToken{
			Kind: uint8(tok.Kind),
			Row:  tok.Location.Row,
			Col:  tok.Location.Column,
			Path: tok.Location.Path,
			Text: tok.Text,
		}
		if tok.Kind == token.IntLit && tok.Int != nil {
			rec.Int = tok.Int.String()
		}
		if tok.Kind == token.FloatLit {
			rec.Float = tok.Float
		}
		out[i] = rec
	}
	return out
}

func fromCached(recs []cachedToken) ([]token.Token, error) {
	out := make([]token.Token, len(recs))
	for i, rec := range recs {
		tok := token.Token{
			Kind: token.Kind(rec.Kind),
			Location: source.Location{
				Row:    rec.Row,
				Column: rec.Col,
				Path:   rec.Path,
			},
			Text: rec.Text,
		}
		if tok.Kind == token.IntLit {
			n, ok := new(big.Int).SetString(rec.Int, 10)
			if !ok {
				return nil, fmt.Errorf("corrupt cached integer literal %q", rec.Int)
			}
			tok.Int = n
		}
		if tok.Kind == token.FloatLit {
			tok.Float = rec.Float
		}
		out[i] = tok
	}
	return out, nil
}
