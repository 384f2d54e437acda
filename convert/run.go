// Package convert implements the convert subcommand: locating SVG documents
// on disk, running them through the gray processor and writing results out.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"svgray/config"
	"svgray/gray"
	"svgray/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line overrides configured conversion parameters
	if cmd.IsSet("method") {
		method, err := config.ParseGrayMethod(cmd.String("method"))
		if err != nil {
			log.Warn("Unknown conversion method requested, keeping configured one", zap.Error(err), zap.Stringer("using", env.Cfg.Document.Method))
		} else {
			env.Cfg.Document.Method = method
		}
	}
	if cmd.IsSet("strength") {
		strength := int(cmd.Int("strength"))
		if strength < 0 || strength > 100 {
			log.Warn("Conversion strength out of range, keeping configured one", zap.Int("requested", strength), zap.Int("using", env.Cfg.Document.Strength))
		} else {
			env.Cfg.Document.Strength = strength
		}
	}
	if !env.Cfg.Document.Method.UsesStrength() && env.Cfg.Document.Strength != 100 {
		log.Debug("Strength has no effect for the requested method, ignoring", zap.Stringer("method", env.Cfg.Document.Method))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Stringer("method", env.Cfg.Document.Method),
		zap.Int("strength", env.Cfg.Document.Strength))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles conversion independently of the CLI framework. It
// determines the input type (directory or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	proc := gray.NewProcessor(gray.Options{
		Method:   env.Cfg.Document.Method,
		Strength: env.Cfg.Document.Strength,
	}, env.Log)

	if fi.Mode().IsDir() {
		return processDir(ctx, proc, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	if !isSVGFile(src) {
		return fmt.Errorf("input was not recognized as SVG document (%s)", src)
	}
	return processFile(ctx, proc, src, filepath.Base(src), dst)
}

// processDir walks directory tree finding SVG files and processes them. A
// failure on one file is logged and does not stop the walk.
func processDir(ctx context.Context, proc *gray.Processor, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !isSVGFile(path) {
			log.Debug("Skipping file, not recognized as SVG", zap.String("file", path))
			return nil
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processFile(ctx, proc, path, src, dst); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processFile converts a single document. src is the path relative to the
// processing root used to mirror directory structure on the output.
func processFile(ctx context.Context, proc *gray.Processor, path, src, dst string) error {
	env := state.EnvFromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	out, err := proc.Document(data)
	if err != nil {
		return fmt.Errorf("unable to convert %s: %w", path, err)
	}

	outPath := buildOutputPath(src, dst, env)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if !env.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("destination already exists (%s), use overwrite to continue", outPath)
		}
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Rpt != nil {
		runID := uuid.NewString()
		env.Rpt.StoreData(fmt.Sprintf("documents/%s/%s", runID, filepath.Base(path)), data)
		env.Rpt.StoreData(fmt.Sprintf("documents/%s/%s", runID, filepath.Base(outPath)), out)
	}

	env.Log.Info("Converted document", zap.String("source", path), zap.String("result", outPath))
	return nil
}

// isSVGFile sniffs whether the file looks like an SVG document: the right
// extension and an svg element near the start of the content. SVG is text so
// binary magic detection does not apply here.
func isSVGFile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 1024)
	n, err := f.Read(head)
	if n == 0 && err != nil {
		return false
	}
	return bytes.Contains(head[:n], []byte("<svg"))
}
