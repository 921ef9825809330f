package main

import (
	"fmt"
	"sort"

	"github.com/ohler55/ojg/oj"

	"github.com/arloliu/lineproto/protocol"
	"github.com/arloliu/lineproto/sender"
)

// sendRecord encodes one NDJSON record onto s as a single protocol line:
//
//	{"table": "trades", "symbols": {"venue": "xetra"},
//	 "columns": {"price": 101.5, "qty": 100}, "at": 1669300000000000000}
//
// Symbol and column keys are emitted in sorted order so a given record
// always produces the same line. Columns are typed by their JSON value:
// bool, integer (i64), float (f64) or string. The "at" key is optional;
// without it the server assigns the timestamp.
//
// Parse and shape errors, including invalid names and unsupported column
// value types, are reported before any sender call, so a malformed record
// never poisons the sender or leaves a partial line in its buffer.
func sendRecord(s *sender.LineSender, data []byte) error {
	parsed, err := oj.Parse(data)
	if err != nil {
		return fmt.Errorf("parse record: %w", err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return fmt.Errorf("record must be a JSON object, got %T", parsed)
	}

	table, ok := obj["table"].(string)
	if !ok {
		return fmt.Errorf("record needs a string \"table\" key")
	}

	symbols, err := sortedStringFields(obj, "symbols")
	if err != nil {
		return err
	}
	columns, err := sortedFields(obj, "columns")
	if err != nil {
		return err
	}
	if len(symbols)+len(columns) == 0 {
		return fmt.Errorf("record for table %q has no symbols or columns", table)
	}

	if err := protocol.ValidateName(table); err != nil {
		return err
	}
	for _, sym := range symbols {
		if err := protocol.ValidateName(sym.key); err != nil {
			return err
		}
	}
	for _, col := range columns {
		if err := protocol.ValidateName(col.key); err != nil {
			return err
		}
		switch col.value.(type) {
		case bool, int64, float64, string:
		default:
			return fmt.Errorf("column %q has unsupported value type %T", col.key, col.value)
		}
	}

	var at int64
	hasAt := false
	if v, present := obj["at"]; present {
		at, ok = v.(int64)
		if !ok {
			return fmt.Errorf("record \"at\" must be integer nanoseconds, got %T", v)
		}
		hasAt = true
	}

	if err := s.Table(table); err != nil {
		return err
	}
	for _, sym := range symbols {
		if err := s.Symbol(sym.key, sym.value); err != nil {
			return err
		}
	}
	for _, col := range columns {
		var err error
		switch v := col.value.(type) {
		case bool:
			err = s.BoolColumn(col.key, v)
		case int64:
			err = s.Int64Column(col.key, v)
		case float64:
			err = s.Float64Column(col.key, v)
		case string:
			err = s.StringColumn(col.key, v)
		}
		if err != nil {
			return err
		}
	}

	if hasAt {
		return s.At(at)
	}

	return s.AtNow()
}

type stringField struct {
	key   string
	value string
}

type anyField struct {
	key   string
	value any
}

func sortedStringFields(obj map[string]any, key string) ([]stringField, error) {
	raw, present := obj[key]
	if !present {
		return nil, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record %q must be a JSON object, got %T", key, raw)
	}

	fields := make([]stringField, 0, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("symbol %q must have a string value, got %T", k, v)
		}
		fields = append(fields, stringField{key: k, value: s})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })

	return fields, nil
}

func sortedFields(obj map[string]any, key string) ([]anyField, error) {
	raw, present := obj[key]
	if !present {
		return nil, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record %q must be a JSON object, got %T", key, raw)
	}

	fields := make([]anyField, 0, len(m))
	for k, v := range m {
		fields = append(fields, anyField{key: k, value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })

	return fields, nil
}
