package driver

import (
	"errors"

	"lexkit/internal/diag"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// TokenizeResult bundles everything the CLI needs after scanning one input.
type TokenizeResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Tokens    []token.Token
	Bag       *diag.Bag
	FromCache bool
}

// TokenizeFile loads a file from disk and scans it. Scan failures land in the
// result's Bag; only I/O and cache corruption surface as returned errors.
// A non-nil cache short-circuits scanning when the content hash hits.
func TokenizeFile(path string, maxDiagnostics int, cache *TokenCache) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	if cache != nil {
		if tokens, ok, cacheErr := cache.Get(file); cacheErr == nil && ok {
			res.Tokens = tokens
			res.FromCache = true
			return res, nil
		}
	}

	tokens, err := lexer.Tokenize(string(file.Content), file.Start())
	if err != nil {
		return res, addScanError(bag, err)
	}
	res.Tokens = tokens

	if cache != nil {
		// A failed cache write never fails the scan.
		_ = cache.Put(file, tokens)
	}
	return res, nil
}

// TokenizeString scans in-memory contents under a virtual file name. Used by
// tests and stdin input.
func TokenizeString(name, contents string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(contents)))
	bag := diag.NewBag(maxDiagnostics)

	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	tokens, err := lexer.Tokenize(string(file.Content), file.Start())
	if err != nil {
		return res, addScanError(bag, err)
	}
	res.Tokens = tokens
	return res, nil
}

// addScanError converts a scanner error into a bag diagnostic. Anything that
// is not a *diag.Error is unexpected and propagates.
func addScanError(bag *diag.Bag, err error) error {
	var scanErr *diag.Error
	if errors.As(err, &scanErr) {
		bag.Add(scanErr.Diagnostic())
		return nil
	}
	return err
}
