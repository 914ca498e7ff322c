// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sunyihoo/abi-decoder/accounts/abi"
	"github.com/sunyihoo/abi-decoder/common"
	"github.com/sunyihoo/abi-decoder/common/hexutil"
)

var errNoTopics = errors.New("log has no topics")

// Log is an event log as returned by a node. The address is opaque and
// copied to the decoded result unchanged.
//
// Log 是节点返回的事件日志。
type Log struct {
	Address string        `json:"address"`
	Topics  []common.Hash `json:"topics"`
	Data    hexutil.Bytes `json:"data"`
}

// DecodedLog is a log decoded against a registered event. Events holds one
// entry per declared input, in declaration order.
type DecodedLog struct {
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Events  []abi.Param `json:"events"`
}

// Map indexes the decoded params by name.
func (l *DecodedLog) Map() map[string]abi.Value {
	return abi.ParamMap(l.Events)
}

// LogError is a failure to decode the log at Index of a batch.
type LogError struct {
	Index int
	Err   error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("log %d: %v", e.Index, e.Err)
}

func (e *LogError) Unwrap() error {
	return e.Err
}

// LogErrors collects the per-log failures of a DecodeLogs call.
type LogErrors []*LogError

func (e LogErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e LogErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// DecodeLogs decodes every log whose first topic is a registered event topic,
// preserving input order. Logs without topics or with an unknown topic are
// dropped. Logs that match an event but fail to decode are left out of the
// result and reported in a LogErrors error; the successfully decoded logs are
// returned alongside it.
//
// DecodeLogs 解码日志批次。无法识别的日志会被跳过，解码失败的日志在 LogErrors 中报告。
func (d *Decoder) DecodeLogs(logs []*Log) ([]*DecodedLog, error) {
	var (
		decoded = make([]*DecodedLog, 0, len(logs))
		failed  LogErrors
	)
	for i, l := range logs {
		if l == nil || len(l.Topics) == 0 {
			d.log.Trace("Dropping log without topics", "index", i)
			continue
		}
		event, ok := d.Event(l.Topics[0][:])
		if !ok {
			d.log.Trace("Dropping log with unknown topic", "index", i, "topic", l.Topics[0])
			continue
		}
		out, err := d.DecodeLog(&event, l)
		if err != nil {
			d.log.Warn("Failed to decode log", "index", i, "event", event.Sig(), "address", l.Address, "err", err)
			failed = append(failed, &LogError{Index: i, Err: err})
			continue
		}
		decoded = append(decoded, out)
	}
	if len(failed) > 0 {
		return decoded, failed
	}
	return decoded, nil
}

// DecodeLog decodes a single log against event. Indexed inputs are read from
// the topics after the signature topic, or from all topics if the event is
// anonymous. The remaining inputs are decoded from the log data.
func (d *Decoder) DecodeLog(event *abi.Entry, l *Log) (*DecodedLog, error) {
	topics := l.Topics
	if !event.Anonymous {
		if len(topics) == 0 {
			return nil, errNoTopics
		}
		topics = topics[1:]
	}
	indexed, err := event.Inputs.UnpackTopics(topics)
	if err != nil {
		return nil, fmt.Errorf("decoding %s topics: %w", event.Sig(), err)
	}
	data, err := event.Inputs.Unpack(l.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s data: %w", event.Sig(), err)
	}
	// Merge both halves back into declaration order.
	// 按声明顺序合并索引参数和非索引参数。
	values := make([]abi.Value, 0, len(event.Inputs))
	for _, input := range event.Inputs {
		if input.Indexed {
			values, indexed = append(values, indexed[0]), indexed[1:]
		} else {
			values, data = append(values, data[0]), data[1:]
		}
	}
	return &DecodedLog{
		Name:    event.Name,
		Address: l.Address,
		Events:  event.Inputs.Params(values),
	}, nil
}
