package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const flushInterval = 2 * time.Second

// AsyncFileWriter buffers log lines in a channel and writes them to a file
// from a single goroutine. Lines are dropped when the channel is full so that
// logging never blocks a request.
type AsyncFileWriter struct {
	writer  *bufio.Writer
	file    *os.File
	logChan chan []byte
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	safeLogFile := filepath.Clean(logFile)
	if err := os.MkdirAll(filepath.Dir(safeLogFile), 0750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(safeLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	aw := &AsyncFileWriter{
		writer:  bufio.NewWriterSize(file, bufferSize),
		file:    file,
		logChan: make(chan []byte, 1000),
		done:    make(chan struct{}),
	}
	aw.wg.Add(1)
	go aw.processLogs()

	return aw, nil
}

func (aw *AsyncFileWriter) Write(p []byte) (int, error) {
	select {
	case aw.logChan <- append([]byte{}, p...):
	default:
	}
	return len(p), nil
}

func (aw *AsyncFileWriter) processLogs() {
	defer aw.wg.Done()
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case logData := <-aw.logChan:
			if _, err := aw.writer.Write(logData); err != nil {
				fmt.Fprintln(os.Stderr, "error writing log data to file:", err)
			}
		case <-ticker.C:
			_ = aw.writer.Flush()
		case <-aw.done:
			for {
				select {
				case logData := <-aw.logChan:
					_, _ = aw.writer.Write(logData)
				default:
					_ = aw.writer.Flush()
					return
				}
			}
		}
	}
}

// Close drains pending lines, flushes and closes the file.
func (aw *AsyncFileWriter) Close() error {
	var err error
	aw.once.Do(func() {
		close(aw.done)
		aw.wg.Wait()
		err = aw.file.Close()
	})
	return err
}
