//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command shabench measures digest throughput. The report rows are
// the algorithms and the columns are power-of-two message sizes.
package main

import (
	"flag"
	"fmt"
	"math/bits"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/markkurossi/shs"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

var (
	verbose = false
	sizes   = []int{1 << 6, 1 << 10, 1 << 14, 1 << 20}
)

// Rate formats a byte rate for the report.
type Rate float64

func (r Rate) String() string {
	if r > 1000*1000*1000 {
		return fmt.Sprintf("%.1f GB/s", float64(r)/(1000*1000*1000))
	} else if r > 1000*1000 {
		return fmt.Sprintf("%.1f MB/s", float64(r)/(1000*1000))
	} else if r > 1000 {
		return fmt.Sprintf("%.1f kB/s", float64(r)/1000)
	} else {
		return fmt.Sprintf("%.1f B/s", float64(r))
	}
}

func main() {
	algorithm := flag.String("a", "", "measure only the named algorithm")
	duration := flag.Duration("t", 250*time.Millisecond,
		"measurement time per table cell")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	verbose = *fVerbose

	algs := shs.Algorithms()
	if len(*algorithm) > 0 {
		alg, err := shs.FromString(*algorithm)
		if err != nil {
			fmt.Printf("%s\n", err)
			os.Exit(1)
		}
		algs = []shs.Algorithm{alg}
	}

	printCPU()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	for _, size := range sizes {
		tab.Header(sizeLabel(size)).SetAlign(tabulate.MR)
	}

	for _, alg := range algs {
		row := tab.Row()
		row.Column(alg.String())
		for _, size := range sizes {
			rate := throughput(alg, size, *duration)
			if verbose {
				fmt.Printf(" - %s %s: %s\n", alg, sizeLabel(size), rate)
			}
			row.Column(rate.String())
		}
	}
	tab.Print(os.Stdout)
}

// printCPU reports the processor and its hash-relevant features. The
// kernels here are portable Go, so the feature lines tell how much
// headroom hardware hashing would still have.
func printCPU() {
	var features []string
	for _, f := range []cpuid.FeatureID{
		cpuid.SHA, cpuid.SHA1, cpuid.SHA2, cpuid.SHA512, cpuid.AVX2,
	} {
		if cpuid.CPU.Supports(f) {
			features = append(features, f.String())
		}
	}
	if len(features) == 0 {
		features = append(features, "none")
	}

	fmt.Printf("CPU      : %s\n", cpuid.CPU.BrandName)
	fmt.Printf("Arch     : %s, %d cores\n", runtime.GOARCH,
		cpuid.CPU.LogicalCores)
	fmt.Printf("Features : %s\n", strings.Join(features, ", "))
}

// sizeLabel renders a message size as a power of two, e.g. 2¹⁰.
func sizeLabel(size int) string {
	return "2" + superscript.Itoa(bits.TrailingZeros(uint(size)))
}

// throughput measures one algorithm at one message size.
func throughput(alg shs.Algorithm, size int, d time.Duration) Rate {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i)
	}

	h := alg.New()
	sum := make([]byte, 0, h.Size())

	var n int64
	start := time.Now()
	for time.Since(start) < d {
		h.Write(buf)
		sum = h.Sum(sum[:0])
		h.Reset()
		n += int64(len(buf))
	}
	elapsed := time.Since(start)

	return Rate(float64(n) / elapsed.Seconds())
}
