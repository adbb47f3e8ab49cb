// File: engine.go
// Title: mscript Engine
// Description: High-level entry point combining the scanner and the parser.
//              Each run gets its own request ID, timed scan and parse phases
//              and optional token and tree dumps for debugging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-06 v0.1.0: Initial engine with Scan and Parse
// - 2026-10-14 v0.2.0: ParseFile, source length limit, debug print flags

package mscript

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	mserror "github.com/msto63/mscript/foundation/core/error"
	mslog "github.com/msto63/mscript/foundation/core/log"
	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/lexer"
	"github.com/msto63/mscript/foundation/mscript/parser"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// DefaultMaxSourceLength is used when Options.MaxSourceLength is zero
const DefaultMaxSourceLength = 1 << 20

// Engine scans and parses mscript source. It keeps no per-parse state and
// is safe for concurrent use.
type Engine struct {
	logger  *mslog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger          *mslog.Logger
	MaxSourceLength int       // bytes; 0 selects DefaultMaxSourceLength
	PrintTokens     bool      // dump the token list to Output after scanning
	PrintAST        bool      // dump the tree to Output after parsing
	Output          io.Writer // defaults to os.Stdout
}

// Result holds everything a single run produced
type Result struct {
	RequestID string
	Tokens    []token.Token
	Root      *ast.Node
	ScanTime  time.Duration
	ParseTime time.Duration
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.MaxSourceLength < 0 {
		return nil, mserror.Newf("max source length must not be negative, got %d", opts.MaxSourceLength).
			WithCode(mserror.CodeInvalidConfig).
			WithOperation("mscript.new")
	}
	if opts.MaxSourceLength == 0 {
		opts.MaxSourceLength = DefaultMaxSourceLength
	}
	if opts.Logger == nil {
		opts.Logger = mslog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	logger := opts.Logger.WithField("component", "mscript-engine")
	logger.Debug("mscript engine initialized", mslog.Fields{
		"maxSourceLength": opts.MaxSourceLength,
		"printTokens":     opts.PrintTokens,
		"printAST":        opts.PrintAST,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// Scan converts source into tokens
func (e *Engine) Scan(src string) ([]token.Token, error) {
	r := e.newRun()
	if err := r.scan(src); err != nil {
		return nil, err
	}
	return r.result.Tokens, nil
}

// Parse scans and parses source into a StatementList
func (e *Engine) Parse(src string) (*ast.Node, error) {
	result, err := e.Run(src)
	if err != nil {
		return nil, err
	}
	return result.Root, nil
}

// ParseFile reads and parses the file at path
func (e *Engine) ParseFile(path string) (*ast.Node, error) {
	src, err := e.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return e.Parse(src)
}

// ReadSource reads a source file, mapping a missing file to NOT_FOUND
func (e *Engine) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mserror.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = mserror.CodeNotFound
		}
		return "", mserror.Wrap(err, "cannot read source file").
			WithCode(code).
			WithDetail("path", path).
			WithOperation("mscript.read").
			WithMessage(code.MessageKey(), map[string]interface{}{
				"Path":   path,
				"Reason": err.Error(),
			})
	}
	return string(data), nil
}

// Run scans and parses source and returns the tokens and the tree
func (e *Engine) Run(src string) (*Result, error) {
	r := e.newRun()
	if err := r.scan(src); err != nil {
		return nil, err
	}
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r.result, nil
}

// run is the state of one Scan or Run call
type run struct {
	engine *Engine
	logger *mslog.Logger
	result *Result
}

func (e *Engine) newRun() *run {
	id := uuid.NewString()
	return &run{
		engine: e,
		logger: e.logger.WithRequestID(id),
		result: &Result{RequestID: id},
	}
}

func (r *run) scan(src string) error {
	if limit := r.engine.options.MaxSourceLength; len(src) > limit {
		return r.fail(mserror.Newf("source is %d bytes, limit is %d", len(src), limit).
			WithCode(mserror.CodeInvalidInput).
			WithDetail("length", len(src)).
			WithDetail("limit", limit).
			WithOperation("mscript.scan").
			WithMessage(mserror.CodeInvalidInput.MessageKey(), map[string]interface{}{
				"Reason": fmt.Sprintf("source exceeds %d bytes", limit),
			}))
	}

	timer := r.logger.StartTimer("scan").WithField("bytes", len(src))
	tokens, err := lexer.Scan(src)
	if err != nil {
		timer.StopWithError(err)
		return r.fail(err)
	}
	r.result.ScanTime = timer.WithField("tokens", len(tokens)).Stop()
	r.result.Tokens = tokens

	if r.engine.options.PrintTokens {
		r.printTokens(tokens)
	}
	return nil
}

func (r *run) parse() error {
	timer := r.logger.StartTimer("parse")
	root, err := parser.New(r.result.Tokens, parser.Options{Logger: r.logger}).Parse()
	if err != nil {
		timer.StopWithError(err)
		return r.fail(err)
	}
	r.result.ParseTime = timer.WithField("statements", root.Len()).Stop()
	r.result.Root = root

	if r.engine.options.PrintAST {
		if err := ast.Fprint(r.engine.options.Output, root); err != nil {
			r.logger.WarnWithErr("cannot print tree", err)
		}
	}
	return nil
}

// fail stamps the run's request ID onto err and logs it
func (r *run) fail(err error) error {
	var msErr *mserror.Error
	if errors.As(err, &msErr) {
		msErr.WithRequestID(r.result.RequestID)
	}
	r.logger.LogError(err)
	return err
}

func (r *run) printTokens(tokens []token.Token) {
	w := r.engine.options.Output
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", tok.Pos, tok); err != nil {
			r.logger.WarnWithErr("cannot print tokens", err)
			return
		}
	}
}
