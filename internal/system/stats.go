package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// RunStats accumulates the numbers behind the post-run report.
type RunStats struct {
	Frames    int
	Emissions int
	Started   time.Time
}

func NewRunStats() *RunStats {
	return &RunStats{Started: time.Now()}
}

// Report prints the performance summary, enriched with process CPU and
// memory figures when they are available.
func (s *RunStats) Report() {
	elapsed := time.Since(s.Started)
	fps := 0.0
	if elapsed.Seconds() > 0 {
		fps = float64(s.Frames) / elapsed.Seconds()
	}

	fmt.Println("--- [PERFORMANCE REPORT] ---")
	fmt.Printf("Frames decoded: %d\n", s.Frames)
	fmt.Printf("Results emitted: %d\n", s.Emissions)
	fmt.Printf("Total time: %.2fs\n", elapsed.Seconds())
	fmt.Printf("Effective FPS: %.2f\n", fps)

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpu, err := proc.CPUPercent(); err == nil {
			fmt.Printf("Process CPU: %.1f%%\n", cpu)
		}
		if mem, err := proc.MemoryInfo(); err == nil {
			fmt.Printf("Process RSS: %.1f MB\n", float64(mem.RSS)/(1024*1024))
		}
	}
	fmt.Println("----------------------------")
}
