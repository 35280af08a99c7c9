// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"
	"path"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ssebide/ssebide-chain/consts"
	"github.com/ssebide/ssebide-chain/utils"
)

const (
	logMaxSize  = 8 // megabytes
	logMaxFiles = 3
	logMaxAge   = 7 // days
)

// newLogger writes human readable logs to [console] and, when [dir] is set,
// JSON logs to a rotated file in [dir].
func newLogger(level string, dir string, console io.Writer) (logging.Logger, error) {
	logLevel, err := logging.ToLevel(level)
	if err != nil {
		return nil, err
	}

	cores := []logging.WrappedCore{
		logging.NewWrappedCore(logLevel, nopWriteCloser{console}, logging.Colors.ConsoleEncoder()),
	}
	if len(dir) > 0 {
		logDir, err := utils.InitSubDirectory(dir, "logs")
		if err != nil {
			return nil, err
		}
		rw := &lumberjack.Logger{
			Filename:   path.Join(logDir, consts.Name+".log"),
			MaxSize:    logMaxSize,
			MaxAge:     logMaxAge,
			MaxBackups: logMaxFiles,
		}
		cores = append(cores, logging.NewWrappedCore(logLevel, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger("", cores...), nil
}

// nopWriteCloser keeps [logging.Logger.Stop] from closing stderr.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
