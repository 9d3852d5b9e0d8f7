package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// Report is one benchmark run. Rows are appended to the --csv file.
type Report struct {
	RunID            string  `csv:"run_id"`
	Timestamp        string  `csv:"timestamp"`
	Input            string  `csv:"input"`
	Mode             string  `csv:"mode"`
	Strategy         string  `csv:"strategy"`
	Status           string  `csv:"status"`
	Host             string  `csv:"host"`
	Iterations       int     `csv:"iterations"`
	Seconds          float64 `csv:"seconds"`
	FPS              float64 `csv:"fps"`
	OriginalBytes    int     `csv:"original_bytes"`
	CompressedBytes  int     `csv:"compressed_bytes"`
	Ratio            float64 `csv:"ratio"`
	EscapeUnits      int     `csv:"escape_units"`
	Digest           string  `csv:"digest"`
	SecondStage      string  `csv:"second_stage"`
	SecondStageBytes int     `csv:"second_stage_bytes"`
	SecondStageRatio float64 `csv:"second_stage_ratio"`
}

// appendCSV appends r to the CSV file at path, writing the header only when
// the file is new or empty.
func appendCSV(path string, r *Report) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	rows := []*Report{r}
	if info.Size() == 0 {
		err = gocsv.MarshalFile(&rows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(&rows, f)
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	return f.Close()
}
