package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"formtree/config"
	"formtree/form"
	"formtree/layout"
	"formtree/state"
	"formtree/style"
	"formtree/xfa"
)

// extensions of files considered to be form templates
var formExts = []string{".xml", ".xdp"}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("layout")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
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

	env.Format = env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if env.Format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Output.Format))
			env.Format = env.Cfg.Output.Format
		}
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines input type (directory or single file) and processes it
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	switch {
	case fi.Mode().IsDir():
		return processDir(ctx, src, dst, log)
	case fi.Mode().IsRegular():
		if !isFormFile(src) {
			return fmt.Errorf("input was not recognized as form template (%s)", src)
		}
		if err := processForm(ctx, src, filepath.Base(src), dst, 1, log); err != nil {
			log.Error("Unable to process file", zap.String("file", src), zap.Error(err))
			return err
		}
		return nil
	}
	return fmt.Errorf("unexpected path mode for (%s)", src)
}

func isFormFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range formExts {
		if ext == e {
			return true
		}
	}
	return false
}

// collectForms returns paths of all form templates under dir, relative to it
// and in natural order. Symbolic links are not followed.
func collectForms(ctx context.Context, dir string, log *zap.Logger) ([]string, error) {
	var forms []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !isFormFile(path) {
			log.Debug("Skipping file, not recognized as form template", zap.String("file", path))
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		forms = append(forms, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Sort(natural.StringSlice(forms))
	return forms, nil
}

// processDir processes every form template under directory. Failure of a
// single form does not stop processing, all errors are combined.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	forms, err := collectForms(ctx, dir, log)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}
	for i, rel := range forms {
		if e := ctx.Err(); e != nil {
			return multierr.Append(err, e)
		}
		path := filepath.Join(dir, rel)
		if e := processForm(ctx, path, rel, dst, i+1, log); e != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(e))
			err = multierr.Append(err, fmt.Errorf("%s: %w", rel, e))
		}
	}
	return err
}

// processForm lays out single form template. "src" is the path relative to
// the processed source (base name when a single file was requested), "dst"
// is the destination directory and "index" is 1-based number of the file in
// processing order.
func processForm(ctx context.Context, path, src, dst string, index int, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Layout starting", zap.String("from", src))
	defer func(start time.Time) {
		// one bad form should not stop processing of others
		if r := recover(); r != nil {
			log.Error("Layout ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("layout panic: %v", r)
		} else if rerr == nil {
			log.Info("Layout completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	root, err := xfa.NewReader(log).Read(f)
	if err != nil {
		return fmt.Errorf("unable to parse form template (%s): %w", src, err)
	}
	env.Rpt.Store(fmt.Sprintf("source-%d%s", index, filepath.Ext(src)), path)

	lc := env.Cfg.Layout
	engine := layout.NewEngine(log,
		style.NewConverter(log, env.Fonts()),
		layout.Estimator{LineHeightFactor: lc.LineHeightFactor, CharWidthFactor: lc.CharWidthFactor},
		lc.FontSize)
	frag := engine.Layout(root, form.Space{Width: lc.PageWidth, Height: lc.PageHeight})

	values := Values{
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Name:       root.Name,
		Format:     env.Format.String(),
		Index:      index,
	}
	values.Title = documentTitle(values, env.Cfg.Output.Title)
	outputName = buildOutputPath(values, src, dst, env)

	if err := prepareDestination(outputName, env.Overwrite, log); err != nil {
		return err
	}
	if err := writeOutput(outputName, frag, values.Title, env.Format); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}
	if err := env.Rpt.StoreCopy(fmt.Sprintf("result-%d%s", index, env.Format.Ext()), outputName); err != nil {
		log.Warn("Unable to store result in debug report", zap.Error(err))
	}
	return nil
}

func documentTitle(v Values, configured string) string {
	switch {
	case len(configured) > 0:
		return configured
	case len(v.Name) > 0:
		return v.Name
	}
	return v.SourceFile
}

// prepareDestination makes sure output file could be written.
func prepareDestination(name string, overwrite bool, log *zap.Logger) error {
	_, err := os.Stat(name)
	switch {
	case err == nil:
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return os.Remove(name)
	case !os.IsNotExist(err):
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
