package parser

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/arenalabs/psxguard/parser/files"
	"github.com/arenalabs/psxguard/pkg/data"
	"github.com/arenalabs/psxguard/pkg/reference"
	"github.com/arenalabs/psxguard/resources"
	"github.com/arenalabs/psxguard/util"

	"github.com/pbnjay/memory"
	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
)

//ErrNoDataAvailable is returned when the dataset directory yields zero
//usable session records. Nothing downstream can proceed without input,
//so callers treat this as fatal.
var ErrNoDataAvailable = errors.New("no usable session data files found")

//FSImporter reads session logs off the filesystem and normalizes them
//into canonical records
type FSImporter struct {
	res      *resources.Resources
	gateways reference.Gateways
}

//NewFSImporter creates a new file system importer
func NewFSImporter(res *resources.Resources, gateways reference.Gateways) *FSImporter {
	return &FSImporter{
		res:      res,
		gateways: gateways,
	}
}

//Run discovers, reads, and normalizes every session log in the dataset
//directory. Files are parsed concurrently, but the returned slice
//preserves sorted file order with line order inside each file, so the
//aggregator's first record wins reduction stays deterministic.
func (fs *FSImporter) Run() ([]data.CanonicalRecord, error) {
	indexedFiles := files.GatherDataFiles(&fs.res.Config.S.Dataset, fs.gateways, fs.res.Log)
	if len(indexedFiles) == 0 {
		return nil, ErrNoDataAvailable
	}

	fs.checkMemory(indexedFiles)

	results := make([][]data.CanonicalRecord, len(indexedFiles))
	indexes := make(chan int)

	p := mpb.New(mpb.WithWidth(20))
	bar := p.AddBar(int64(len(indexedFiles)),
		mpb.PrependDecorators(
			decor.Name("\t[-] Importing session logs:", decor.WC{W: 30, C: decor.DidentRight}),
			decor.CountersNoUnit(" %d / %d ", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	workers := fs.res.Config.S.Dataset.ImportWorkers
	if workers <= 0 {
		workers = util.Max(1, runtime.NumCPU()/2)
	}
	workers = util.Min(workers, len(indexedFiles))

	var importWg sync.WaitGroup
	for i := 0; i < workers; i++ {
		importWg.Add(1)
		go func() {
			defer importWg.Done()
			for idx := range indexes {
				start := time.Now()
				results[idx] = fs.parseFile(indexedFiles[idx])
				bar.IncrBy(1, time.Since(start))
			}
		}()
	}

	for i := range indexedFiles {
		indexes <- i
	}
	close(indexes)
	importWg.Wait()
	p.Wait()

	var records []data.CanonicalRecord
	for _, fileRecords := range results {
		records = append(records, fileRecords...)
	}

	if len(records) == 0 {
		return nil, ErrNoDataAvailable
	}

	fs.res.Log.WithFields(log.Fields{
		"files":   len(indexedFiles),
		"records": len(records),
		"run_id":  fs.res.RunID,
	}).Info("Finished importing session logs")

	return records, nil
}

//parseFile reads and normalizes one session log. Unreadable files are
//skipped as a whole; per-record faults degrade fields instead.
func (fs *FSImporter) parseFile(file *files.IndexedFile) []data.CanonicalRecord {
	rawRecords, err := files.ReadSessionFile(file, fs.res.Log)
	if err != nil {
		fs.res.Log.WithFields(log.Fields{
			"error": err.Error(),
			"file":  file.Path,
		}).Error("Skipping unreadable session log")
		return nil
	}

	records := make([]data.CanonicalRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		records = append(records, NormalizeRecord(raw, file))
	}
	return records
}

//checkMemory warns when the dataset is likely too large to materialize.
//The whole pipeline holds its input in memory, so give the operator a
//heads up before the OOM killer does.
func (fs *FSImporter) checkMemory(indexedFiles []*files.IndexedFile) {
	var totalSize int64
	for _, file := range indexedFiles {
		totalSize += file.Size
	}

	total := memory.TotalMemory()
	if total > 0 && uint64(totalSize) > total {
		fs.res.Log.WithFields(log.Fields{
			"dataset_bytes": totalSize,
			"total_bytes":   total,
		}).Warn("Dataset is larger than total system memory, import may exhaust RAM")
	}
}
