//go:build !opencl

package main

import "errors"

type openCLSolver struct{}

func newOpenCLSolver(_ simParams, _ bool, _ float64) (*openCLSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLSolver) Step(_ *doubleBuffer, _ int, _ bool) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLSolver) Name() string { return "OpenCL (unavailable)" }

func (s *openCLSolver) DeviceName() string { return "" }

func (s *openCLSolver) Close() {}
