package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// startPosition is one seed position a retrograde walk begins from, read
// straight out of the job YAML.
type startPosition struct {
	FEN         string `yaml:"fen"`
	WhitePocket string `yaml:"white_pocket"`
	BlackPocket string `yaml:"black_pocket"`
}

// job is the small, load-once configuration document for a retrograde
// walk: the donor codebase pushes all configuration to its cmd/ binaries
// and keeps the libraries themselves config-free, so this struct -- not a
// field on retro.Board -- is where "how many layers" and "how many
// workers" live.
type job struct {
	Positions []startPosition `yaml:"positions"`
	Depth     int             `yaml:"depth"`
	Workers   int             `yaml:"workers"`
}

func loadJob(path string) (*job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("retrowalk: open job file: %w", err)
	}
	defer f.Close()

	var j job
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("retrowalk: parse job file: %w", err)
	}
	if len(j.Positions) == 0 {
		return nil, fmt.Errorf("retrowalk: job has no positions")
	}
	if j.Depth <= 0 {
		j.Depth = 1
	}
	if j.Workers <= 0 {
		j.Workers = 1
	}
	return &j, nil
}

func (p startPosition) extendedFEN() string {
	fen := p.FEN
	white, black := p.WhitePocket, p.BlackPocket
	if white == "" && black == "" {
		return fen
	}
	return fmt.Sprintf("%s %s %s", fen, white, black)
}
