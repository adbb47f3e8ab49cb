// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     cmd
// Description: Shared command state: settings, logger, message catalogue,
//              engine and renderer
// Author:      msto63
// Created:     2026-10-11
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/core/i18n"
	mslog "github.com/msto63/mscript/foundation/core/log"
	mscript "github.com/msto63/mscript/foundation/mscript"
	"github.com/msto63/mscript/internal/render"
	"github.com/msto63/mscript/internal/store"
	"github.com/msto63/mscript/pkg/core/config"
	"github.com/msto63/mscript/pkg/core/logging"
)

// stdinName is shown in diagnostics for source read from standard input
const stdinName = "<stdin>"

// app is the state shared by all commands of one invocation
type app struct {
	// Persistent flags
	configPath string
	verbose    bool
	plain      bool
	locale     string

	settings  *config.Config
	logger    *mslog.Logger
	catalogue *i18n.Manager
	engine    *mscript.Engine
	renderer  *render.Renderer
}

// setup loads the settings and builds the collaborators. The catalogue is
// created first so that configuration errors are localised.
func (a *app) setup(cmd *cobra.Command) error {
	locale := a.locale
	if locale == "" {
		locale = config.DefaultLocale()
	}
	catalogue, err := i18n.New(i18n.Options{Locale: locale})
	if err != nil {
		return err
	}
	a.catalogue = catalogue

	settings, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.settings = settings
	if a.locale == "" {
		// An unknown locale keeps the detected one.
		_ = a.catalogue.SetLocale(settings.Locale)
	}

	logger, err := logging.NewLogger(logging.LoggerConfig{
		Name:    config.AppName,
		Level:   settings.Log.Level,
		Format:  settings.Log.Format,
		Verbose: a.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logger = logger

	engine, err := mscript.New(mscript.Options{
		Logger:          logger,
		MaxSourceLength: settings.Parser.MaxSourceLength,
		PrintTokens:     settings.Print.Tokens,
		PrintAST:        settings.Print.AST,
		Output:          cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	a.engine = engine

	a.renderer = render.New(!a.plain && isTerminal(cmd.OutOrStdout()))

	logger.Debug("settings loaded", mslog.Fields{
		"source": settings.Source,
		"locale": a.catalogue.GetCurrentLocale(),
		"styled": a.renderer.Styled(),
	})
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// localize renders err for the user, also before setup has run
func (a *app) localize(err error) string {
	if a.catalogue == nil {
		catalogue, cerr := i18n.New(i18n.Options{Locale: a.locale})
		if cerr != nil {
			return err.Error()
		}
		a.catalogue = catalogue
	}
	return a.catalogue.Localize(err)
}

// source reads a named file, or standard input for "-"
func (a *app) source(cmd *cobra.Command, name string) (string, string, error) {
	if name != "-" {
		src, err := a.engine.ReadSource(name)
		return name, src, err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return stdinName, "", mserror.Wrap(err, "cannot read standard input").
			WithCode(mserror.CodeInvalidInput).
			WithOperation("mscript.read").
			WithMessage(mserror.CodeInvalidInput.MessageKey(), map[string]interface{}{
				"Reason": err.Error(),
			})
	}
	return stdinName, string(data), nil
}

// report prints a positioned diagnostic for err to stderr
func (a *app) report(cmd *cobra.Command, file, src string, err error) {
	d := render.Diagnostic{
		File:    file,
		Message: a.catalogue.Message(err),
		Source:  src,
	}
	var msErr *mserror.Error
	if errors.As(err, &msErr) {
		d.Line, d.Column, _ = msErr.Position()
	}
	io.WriteString(cmd.ErrOrStderr(), a.renderer.Diagnostic(d))
}

// openCache opens the parse cache named in the settings
func (a *app) openCache() (*store.SQLiteCacheStore, error) {
	return store.NewSQLiteCacheStore(store.SQLiteCacheConfig{Path: a.settings.Cache.Path})
}
