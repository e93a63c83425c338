package cmm

import (
	"io"
	"log/slog"
	"os"
	"time"
)

const defaultPrintSeparator = " "

// Config controls where output goes and how runs are bounded.
type Config struct {
	// Stdout receives print output. Defaults to os.Stdout.
	Stdout io.Writer
	// PrintSeparator follows every printed integer. Defaults to a single
	// space.
	PrintSeparator string
	// StepQuota bounds the number of statements and loop iterations a run
	// may evaluate. Zero means unlimited.
	StepQuota int
	// Logger receives debug traces of each pipeline phase. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger
}

// Engine compiles and runs C-- programs. It keeps no per-run state.
type Engine struct {
	config Config
	logger *slog.Logger
}

// NewEngine constructs an Engine, filling unset Config fields with
// defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.PrintSeparator == "" {
		cfg.PrintSeparator = defaultPrintSeparator
	}
	if cfg.StepQuota < 0 {
		cfg.StepQuota = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{config: cfg, logger: cfg.Logger}
}

func (e *Engine) Config() Config {
	return e.config
}

// Script is a successfully parsed program bound to the engine that
// compiled it.
type Script struct {
	engine  *Engine
	program *Program
	source  string
}

// Compile lexes and parses source. A lexical fault is returned as
// *LexicalError. Syntax errors are returned together as *CompileError.
func (e *Engine) Compile(source string) (*Script, error) {
	start := time.Now()
	program, err := Parse(source)
	if err != nil {
		e.logger.Debug("compile failed", "error", err, "elapsed", time.Since(start))
		return nil, err
	}
	e.logger.Debug("compiled", "statements", len(program.Statements), "elapsed", time.Since(start))
	return &Script{engine: e, program: program, source: source}, nil
}

// Parse runs the parser to exhaustion over source.
func Parse(source string) (*Program, error) {
	p := newParser(source)
	program, syntaxErrors, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if len(syntaxErrors) > 0 {
		return nil, &CompileError{Errors: syntaxErrors}
	}
	return program, nil
}

func (s *Script) Program() *Program {
	return s.program
}

func (s *Script) Source() string {
	return s.source
}

// Run evaluates the script against env, creating a fresh Env when env is
// nil. It returns the value of the last top-level statement; the boolean
// is false when that statement produced no value.
func (s *Script) Run(env *Env) (Value, bool, error) {
	if env == nil {
		env = NewEnv()
	}
	logger := s.engine.logger
	exec := newExecution(s.engine.config, env)

	start := time.Now()
	val, ok, err := exec.evalProgram(s.program)
	if err != nil {
		logger.Debug("run failed", "error", err, "steps", exec.steps, "elapsed", time.Since(start))
		return Value{}, false, err
	}
	logger.Debug("run finished", "steps", exec.steps, "bindings", env.Len(), "elapsed", time.Since(start))
	return val, ok, nil
}

// Execute compiles source and runs it with a fresh Env.
func (e *Engine) Execute(source string) error {
	script, err := e.Compile(source)
	if err != nil {
		return err
	}
	_, _, err = script.Run(nil)
	return err
}
