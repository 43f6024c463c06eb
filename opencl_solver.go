//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLSolver executes the wave kernel on an OpenCL device. Both field
// buffers stay resident between batched ticks; the host copies are refreshed
// once per batch, so a tick's cell updates never mix with host reads.
type openCLSolver struct {
	context           *cl.Context
	queue             *cl.CommandQueue
	program           *cl.Program
	kernel            *cl.Kernel
	boundaryRowKernel *cl.Kernel
	boundaryColKernel *cl.Kernel
	curBuf            *cl.MemObject
	prevBuf           *cl.MemObject
	width, height     int
	c2                float32
	damp              float32
	absorb            bool
	reflect           float32
	deviceName        string
	synced            bool
}

// waveKernelSource mirrors the host kernel: 5-point Laplacian with clamped
// edge addressing, leapfrog update, uniform damping. The next value is
// written into the previous-role buffer; each work item touches prev only at
// its own index, so the in-place write is hazard free.
const waveKernelSource = `__kernel void wave_step(
    const int width,
    const int height,
    const float damp,
    const float c2,
    __global const float* curr,
    __global float* prev_next)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    int xl = max(x - 1, 0);
    int xr = min(x + 1, width - 1);
    int yt = max(y - 1, 0);
    int yb = min(y + 1, height - 1);
    float center = curr[idx];
    float laplacian = curr[y * width + xl] + curr[y * width + xr]
        + curr[yt * width + x] + curr[yb * width + x] - 4.0f * center;
    prev_next[idx] = ((2.0f * center - prev_next[idx]) + c2 * laplacian) * damp;
}

__kernel void apply_boundary_rows(
    const int width,
    const int height,
    const float reflect,
    __global float* buffer)
{
    int x = get_global_id(0);
    if (x >= width) {
        return;
    }
    int last_row = height - 1;
    buffer[x] = -buffer[width + x] * reflect;
    buffer[last_row * width + x] = -buffer[(last_row - 1) * width + x] * reflect;
}

__kernel void apply_boundary_cols(
    const int width,
    const int height,
    const float reflect,
    __global float* buffer)
{
    int y = get_global_id(0) + 1;
    if (y >= height - 1) {
        return;
    }
    int base = y * width;
    buffer[base] = -buffer[base + 1] * reflect;
    buffer[base + width - 1] = -buffer[base + width - 2] * reflect;
}`

// newOpenCLSolver picks a device (GPU preferred, CPU accepted), builds the
// program, and allocates the two resident field buffers.
func newOpenCLSolver(params simParams, absorb bool, reflect float64) (*openCLSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{waveKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("wave_step")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	boundaryRowKernel, err := program.CreateKernel("apply_boundary_rows")
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating boundary row kernel: %w", err)
	}
	boundaryColKernel, err := program.CreateKernel("apply_boundary_cols")
	if err != nil {
		boundaryRowKernel.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating boundary column kernel: %w", err)
	}

	byteSize := params.gridW * params.gridH * int(unsafe.Sizeof(float32(0)))
	curBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
	if err != nil {
		boundaryColKernel.Release()
		boundaryRowKernel.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating current buffer: %w", err)
	}
	prevBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, byteSize)
	if err != nil {
		curBuf.Release()
		boundaryColKernel.Release()
		boundaryRowKernel.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating previous buffer: %w", err)
	}

	return &openCLSolver{
		context:           context,
		queue:             queue,
		program:           program,
		kernel:            kernel,
		boundaryRowKernel: boundaryRowKernel,
		boundaryColKernel: boundaryColKernel,
		curBuf:            curBuf,
		prevBuf:           prevBuf,
		width:             params.gridW,
		height:            params.gridH,
		c2:                params.courantSq(),
		damp:              float32(params.damping),
		absorb:            absorb,
		reflect:           float32(reflect),
		deviceName:        device.Name(),
	}, nil
}

// upload refreshes both device buffers from the host fields.
func (s *openCLSolver) upload(buffers *doubleBuffer) error {
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.curBuf, false, 0, buffers.current().cells, nil); err != nil {
		return fmt.Errorf("writing current buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.prevBuf, false, 0, buffers.previous().cells, nil); err != nil {
		return fmt.Errorf("writing previous buffer: %w", err)
	}
	return nil
}

// Step batches the requested ticks on the device and reads the results back
// into the host fields, keeping host role labels in lockstep with the device
// buffer swaps.
func (s *openCLSolver) Step(buffers *doubleBuffer, steps int, hostDirty bool) error {
	if steps <= 0 {
		return nil
	}
	if hostDirty || !s.synced {
		if err := s.upload(buffers); err != nil {
			return err
		}
		s.synced = true
	}
	global := []int{s.width * s.height}
	for i := 0; i < steps; i++ {
		if err := s.kernel.SetArgs(
			int32(s.width),
			int32(s.height),
			s.damp,
			s.c2,
			s.curBuf,
			s.prevBuf,
		); err != nil {
			return fmt.Errorf("setting kernel arguments: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing kernel: %w", err)
		}
		// prevBuf now holds the freshly written state
		s.curBuf, s.prevBuf = s.prevBuf, s.curBuf
		buffers.swap()
		if s.absorb {
			if err := s.applyBoundary(); err != nil {
				return err
			}
		}
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.curBuf, true, 0, buffers.current().cells, nil); err != nil {
		return fmt.Errorf("reading current buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.prevBuf, true, 0, buffers.previous().cells, nil); err != nil {
		return fmt.Errorf("reading previous buffer: %w", err)
	}
	return nil
}

// applyBoundary runs the absorbing edge kernels against the current buffer.
func (s *openCLSolver) applyBoundary() error {
	if s.height > 1 {
		if err := s.boundaryRowKernel.SetArgs(int32(s.width), int32(s.height), s.reflect, s.curBuf); err != nil {
			return fmt.Errorf("setting boundary row arguments: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.boundaryRowKernel, nil, []int{s.width}, nil, nil); err != nil {
			return fmt.Errorf("applying boundary rows: %w", err)
		}
	}
	if s.height > 2 {
		if err := s.boundaryColKernel.SetArgs(int32(s.width), int32(s.height), s.reflect, s.curBuf); err != nil {
			return fmt.Errorf("setting boundary column arguments: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.boundaryColKernel, nil, []int{s.height - 2}, nil, nil); err != nil {
			return fmt.Errorf("applying boundary columns: %w", err)
		}
	}
	return nil
}

// Name identifies the backend for the debug overlay and startup log.
func (s *openCLSolver) Name() string {
	return fmt.Sprintf("OpenCL (%s)", s.deviceName)
}

// DeviceName reports the selected OpenCL device.
func (s *openCLSolver) DeviceName() string { return s.deviceName }

// Close releases all device resources.
func (s *openCLSolver) Close() {
	if s.prevBuf != nil {
		s.prevBuf.Release()
		s.prevBuf = nil
	}
	if s.curBuf != nil {
		s.curBuf.Release()
		s.curBuf = nil
	}
	if s.boundaryColKernel != nil {
		s.boundaryColKernel.Release()
		s.boundaryColKernel = nil
	}
	if s.boundaryRowKernel != nil {
		s.boundaryRowKernel.Release()
		s.boundaryRowKernel = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
