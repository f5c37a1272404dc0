package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/logging"
	"github.com/ZaneLittle/SwoleExperience-sub000/internal/weight"
	"github.com/ZaneLittle/SwoleExperience-sub000/pkg"
)

type output struct {
	Averages []weight.AverageRecord `json:"averages"`
	Chart    weight.ChartStatistics `json:"chart"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("weightstats: %s", err)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("weightstats", flag.ContinueOnError)
	inPath := flags.String("in", "", "path of the JSON file with the weight records")
	timezone := flags.String("tz", "", "timezone the calendar days are computed in (empty for local)")
	logLevel := flags.String("log-level", "warn", "log level [trace | debug | info | warn | error]")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    *logLevel,
	})
	// keep stdout clean for the JSON output
	log.SetOutput(os.Stderr)

	if *inPath == "" {
		return errors.New("input file not specified, use -in")
	}
	exists, err := pkg.PathExists(*inPath, false)
	if err != nil {
		return fmt.Errorf("check input file: %w", err)
	}
	if !exists {
		return fmt.Errorf("input file [%s] does not exist", *inPath)
	}

	loc := time.Local
	if *timezone != "" {
		loc, err = time.LoadLocation(*timezone)
		if err != nil {
			return fmt.Errorf("load timezone [%s]: %w", *timezone, err)
		}
	}

	measurements, err := readMeasurements(*inPath, loc)
	if err != nil {
		return err
	}
	log.Debugf("read %d weight records from [%s]", len(measurements), *inPath)

	averages, err := weight.ComputeDailyAverages(measurements, loc)
	if err != nil {
		log.Errorf("compute averages: %s", err)
		averages = []weight.DailyAverage{}
	}
	// newest first, the order the store hands them out in
	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Date.After(averages[j].Date)
	})

	res := output{
		Averages: make([]weight.AverageRecord, 0, len(averages)),
		Chart:    weight.ComputeChartStatistics(measurements, averages, loc),
	}
	for _, a := range averages {
		res.Averages = append(res.Averages, a.ToData())
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

func readMeasurements(path string, loc *time.Location) ([]weight.Measurement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	var records []weight.MeasurementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal weight records: %w", err)
	}

	measurements := make([]weight.Measurement, 0, len(records))
	for _, r := range records {
		measurements = append(measurements, weight.MeasurementFromData(r, loc))
	}
	return measurements, nil
}
