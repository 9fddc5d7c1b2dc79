package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"

	"lsbkit/internal/logging"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	cpuProfiler *CPUProfilerStruct
	memProfiler *MemProfilerStruct
)

type CPUProfilerStruct struct {
	profileOutput io.WriteCloser
}

type MemProfilerStruct struct {
	dumpPath           string
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	stopped            chan struct{}
}

// StartCPUProfiler writes a pprof CPU profile to profilePath until StopCPUProfiler is called
func StartCPUProfiler(profilePath string) error {
	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return err
	}

	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		profileOutput.Close()
		return fmt.Errorf("starting CPU profiler: %w", err)
	}
	cpuProfiler = &CPUProfilerStruct{profileOutput: profileOutput}
	return nil
}

func StopCPUProfiler() error {
	if cpuProfiler == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := cpuProfiler.profileOutput.Close()
	cpuProfiler = nil
	return err
}

func StartMemoryProfiler(profileDumpPath string) {
	if MemorySampleRate <= 0 {
		return
	}

	memProfiler = &MemProfilerStruct{
		dumpPath:           profileDumpPath,
		shouldProfilerStop: make(chan struct{}),
		stopped:            make(chan struct{}),
	}

	go func(profiler *MemProfilerStruct) {
		defer close(profiler.stopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-profiler.shouldProfilerStop:
				return
			case <-ticker.C:
				dumpMemoryProfile(profiler)
			}
		}
	}(memProfiler)
}

func dumpMemoryProfile(profiler *MemProfilerStruct) {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		logging.BuildLogger().WithError(err).Warn("Error taking heap profile")
		return
	}
	profiler.heapDumps = append(profiler.heapDumps, w.Bytes())
}

// StopMemoryProfiler takes a last heap dump and writes every dump taken into the dump directory
func StopMemoryProfiler() error {
	if memProfiler == nil {
		return nil
	}
	profiler := memProfiler
	memProfiler = nil

	close(profiler.shouldProfilerStop)
	<-profiler.stopped
	dumpMemoryProfile(profiler)

	if err := os.MkdirAll(profiler.dumpPath, 0775); err != nil {
		return err
	}
	for dIdx, dump := range profiler.heapDumps {
		err := os.WriteFile(filepath.Join(profiler.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0664)
		if err != nil {
			return fmt.Errorf("writing memory profile to disk: %w", err)
		}
	}
	return nil
}
