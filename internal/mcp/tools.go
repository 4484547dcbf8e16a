package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blackwell-systems/repolens/internal/analyzer"
	"github.com/blackwell-systems/repolens/internal/scanner"
)

// scanArgs are the arguments shared by both tools. Omitted fields fall back
// to the loaded configuration.
type scanArgs struct {
	Path             string   `json:"path"`
	MaxDepth         *int     `json:"max_depth,omitempty"`
	IgnorePatterns   []string `json:"ignore_patterns,omitempty"`
	Parallel         *bool    `json:"parallel,omitempty"`
	FollowLinks      *bool    `json:"follow_links,omitempty"`
	RespectGitignore *bool    `json:"respect_gitignore,omitempty"`
}

type scanDirectoryArgs struct {
	scanArgs
	IncludeFiles *bool `json:"include_files,omitempty"`
}

// ScanSummary is a ScanResult without its entry list.
type ScanSummary struct {
	FileCount  int    `json:"file_count"`
	DirCount   int    `json:"dir_count"`
	TotalSize  uint64 `json:"total_size"`
	DurationMs uint64 `json:"duration_ms"`
}

// AnalyzeProjectResult is the analyze_project payload.
type AnalyzeProjectResult struct {
	Path     string                   `json:"path"`
	Scan     ScanSummary              `json:"scan"`
	Analysis analyzer.ProjectAnalysis `json:"analysis"`
}

const scanProperties = `
	"path":              {"type":"string","description":"Directory to scan"},
	"max_depth":         {"type":"integer","minimum":0,"description":"Maximum depth; the root is depth 0"},
	"ignore_patterns":   {"type":"array","items":{"type":"string"},"description":"Patterns replacing the default ignore list"},
	"parallel":          {"type":"boolean"},
	"follow_links":      {"type":"boolean"},
	"respect_gitignore": {"type":"boolean"}`

var (
	scanDirectorySchema = json.RawMessage(`{"type":"object","properties":{` + scanProperties + `,
	"include_files": {"type":"boolean","description":"Include the entry list (default true)"}
},"required":["path"],"additionalProperties":false}`)

	analyzeProjectSchema = json.RawMessage(`{"type":"object","properties":{` + scanProperties + `
},"required":["path"],"additionalProperties":false}`)
)

// addTools registers the scan and analysis tools on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "scan_directory",
		Description: "Walk a directory tree and return per-entry metadata with file count, directory count and total size.",
		InputSchema: scanDirectorySchema,
		Handler:     s.handleScanDirectory,
	})
	s.registerTool(toolDef{
		Name:        "analyze_project",
		Description: "Scan a directory and characterize it: project type, language breakdown, dependency and config files, estimated lines of code.",
		InputSchema: analyzeProjectSchema,
		Handler:     s.handleAnalyzeProject,
	})
}

// scanConfig merges a and the configured defaults.
func (s *Server) scanConfig(a scanArgs) (scanner.ScanConfig, error) {
	if a.Path == "" {
		return scanner.ScanConfig{}, errors.New("path is required")
	}

	var cfg scanner.ScanConfig
	if s.cfg != nil {
		cfg = s.cfg.ScanConfig(a.Path)
	} else {
		cfg = scanner.DefaultScanConfig()
		cfg.Path = a.Path
	}
	cfg.Logger = s.log

	if a.MaxDepth != nil {
		if *a.MaxDepth < 0 {
			return scanner.ScanConfig{}, fmt.Errorf("max_depth must be non-negative, got %d", *a.MaxDepth)
		}
		cfg.MaxDepth = scanner.Depth(*a.MaxDepth)
	}
	if a.IgnorePatterns != nil {
		cfg.IgnorePatterns = a.IgnorePatterns
	}
	if a.Parallel != nil {
		cfg.Parallel = *a.Parallel
	}
	if a.FollowLinks != nil {
		cfg.FollowLinks = *a.FollowLinks
	}
	if a.RespectGitignore != nil {
		cfg.RespectGitignore = *a.RespectGitignore
	}
	return cfg, nil
}

func (s *Server) handleScanDirectory(ctx context.Context, args json.RawMessage) (any, error) {
	var a scanDirectoryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	cfg, err := s.scanConfig(a.scanArgs)
	if err != nil {
		return nil, err
	}

	res, err := scanner.Scan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if a.IncludeFiles != nil && !*a.IncludeFiles {
		return summarize(res), nil
	}
	return res, nil
}

func (s *Server) handleAnalyzeProject(ctx context.Context, args json.RawMessage) (any, error) {
	var a scanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	cfg, err := s.scanConfig(a)
	if err != nil {
		return nil, err
	}

	res, err := scanner.Scan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return AnalyzeProjectResult{
		Path:     cfg.Path,
		Scan:     summarize(res),
		Analysis: analyzer.Analyze(res.Files),
	}, nil
}

func summarize(res *scanner.ScanResult) ScanSummary {
	return ScanSummary{
		FileCount:  res.FileCount,
		DirCount:   res.DirCount,
		TotalSize:  res.TotalSize,
		DurationMs: res.DurationMs,
	}
}
