package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lexkit/internal/diag"
	"lexkit/internal/lexer"
	"lexkit/internal/source"
	"lexkit/internal/token"
)

// TokenizeDirResult holds the outcome for one file of a directory scan.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// listSourceFiles returns a sorted list of files under dir with the given
// extension. Sorting keeps result order deterministic regardless of
// goroutine scheduling.
func listSourceFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every matching file under dir in parallel. Each file gets
// its own Bag; scan and load failures become diagnostics, so one broken file
// never aborts its siblings. jobs <= 0 means GOMAXPROCS.
func TokenizeDir(ctx context.Context, dir, ext string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listSourceFiles(dir, ext)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Preload everything into a shared FileSet: FileSet mutation is not
	// thread-safe, scanning loaded files is.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index; no mutex needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.StartOfFile(path),
					"failed to load file: "+loadErr.Error()))
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			tokens, err := lexer.Tokenize(string(file.Content), file.Start())
			if err != nil {
				if err := addScanError(bag, err); err != nil {
					return err
				}
			}

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
