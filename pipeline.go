package beadgrid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/beadgrid/pixelize"
	"github.com/bodgit/beadgrid/project"
)

const batchWorkers = 10

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

func isImage(file string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

func (b *BeadGrid) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isImage(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

// Project name for an image, its path relative to the batch directory
// without the extension
func projectName(base, file string) (string, error) {
	rel, err := filepath.Rel(base, file)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel))), nil
}

func (b *BeadGrid) imageWorker(ctx context.Context, base string, px *pixelize.Pixelizer, cfg project.Config, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			existing, err := b.db.FindProjectByChecksum(crc)
			if err != nil {
				errc <- err
				return
			}
			if existing != "" {
				b.logger.Printf("Skipping \"%s\", already pixelized as \"%s\"\n", file, existing)
				continue
			}

			name, err := projectName(base, file)
			if err != nil {
				errc <- err
				return
			}

			m, err := decodeImage(file)
			if err != nil {
				b.logger.Printf("Unable to decode \"%s\": %s\n", file, err)
				continue
			}

			if _, err := b.pixelize(px, m, name, crc, cfg); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch pixelizes every image found under path using the same settings.
// Images already pixelized, going by their checksum, are skipped.
func (b *BeadGrid) Batch(path string, cfg project.Config) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// A zero height is filled in per image
	check := cfg.Config
	if check.Height == 0 {
		check.Height = 1
	}
	if err := check.Validate(); err != nil {
		return err
	}

	px, err := b.pixelizer(cfg.Brand)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := b.findImages(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < batchWorkers; i++ {
		errc, err := b.imageWorker(ctx, dir, px, cfg, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
