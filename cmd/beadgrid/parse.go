package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errCell = errors.New("expected X,Y,COLOR")
	errSize = errors.New("expected WIDTHxHEIGHT")
)

type cellEdit struct {
	x, y int
	id   string
}

func parseCellEdit(s string) (cellEdit, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) != 3 || parts[2] == "" {
		return cellEdit{}, fmt.Errorf("%w: %q", errCell, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return cellEdit{}, fmt.Errorf("%w: %q", errCell, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return cellEdit{}, fmt.Errorf("%w: %q", errCell, s)
	}

	return cellEdit{x, y, strings.TrimSpace(parts[2])}, nil
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errSize, s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errSize, s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errSize, s)
	}

	return w, h, nil
}
