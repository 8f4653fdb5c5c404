// generate_sample_sheet writes a synthetic IRIDA sample sheet for load testing add-column.
package main

import (
	"compress/gzip"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

func main() {
	var (
		rows       = flag.Int("rows", 100000, "Number of samples to generate")
		output     = flag.String("output", "samples.tsv", "Output file path")
		compress   = flag.Bool("compress", false, "Compress output with gzip")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		unmarked   = flag.Float64("unmarked", 0.01, "Fraction of reads without an S<number> marker")
		flushEvery = flag.Int("flush-every", 100000, "Print progress every N rows")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var out io.Writer = file
	var gzWriter *gzip.Writer
	if *compress {
		gzWriter = gzip.NewWriter(file)
		defer gzWriter.Close()
		out = gzWriter
	}

	writer := csv.NewWriter(out)
	writer.Comma = '\t'
	defer writer.Flush()

	header := []string{"sample_name", "IRIDA_ID", "Raw_forward", "Raw_reverse", "project"}
	if err := writer.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing header: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *rows; i++ {
		run := fmt.Sprintf("/runs/%06d", 230101+i/384)
		name := fmt.Sprintf("PID-%04d-%ds", rng.Intn(10000), i)
		lane := rng.Intn(4) + 1

		var r1, r2 string
		if rng.Float64() < *unmarked {
			r1 = fmt.Sprintf("%s/%s_R1.fastq.gz", run, name)
			r2 = fmt.Sprintf("%s/%s_R2.fastq.gz", run, name)
		} else {
			marker := i%384 + 1
			r1 = fmt.Sprintf("%s/%s_S%d_L%03d_R1_001.fastq.gz", run, name, marker, lane)
			r2 = fmt.Sprintf("%s/%s_S%d_L%03d_R2_001.fastq.gz", run, name, marker, lane)
		}

		row := []string{
			name,
			fmt.Sprintf("%d", 1000+i),
			r1,
			r2,
			fmt.Sprintf("P-%d", rng.Intn(50)),
		}
		if err := writer.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing row: %v\n", err)
			os.Exit(1)
		}

		if (i+1)%*flushEvery == 0 {
			writer.Flush()
			fmt.Fprintf(os.Stderr, "Generated %d rows...\n", i+1)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing rows: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Successfully generated %d samples in %s\n", *rows, *output)
}
