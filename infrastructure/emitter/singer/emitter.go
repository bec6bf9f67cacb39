package singer

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

//go:generate mockgen -source=emitter.go -destination=mocks/emitter_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Emitter é o destino do stream de registros com schema declarado. O
// orquestrador declara o schema de cada stream exatamente uma vez, antes de
// qualquer registro daquele stream.
type Emitter interface {
	WriteSchema(stream string, schema Schema, keyProperties []string) error
	WriteRecords(stream string, records []any) error
	WriteState(state any) error
}

// message é o envelope de uma linha emitida.
type message struct {
	Type          string   `json:"type"`
	Stream        string   `json:"stream,omitempty"`
	Schema        Schema   `json:"schema,omitempty"`
	KeyProperties []string `json:"key_properties,omitempty"`
	Record        any      `json:"record,omitempty"`
	Value         any      `json:"value,omitempty"`
}

// StreamEmitter escreve mensagens SCHEMA/RECORD/STATE, uma por linha, no
// writer recebido (stdout no processo real).
type StreamEmitter struct {
	writer io.Writer
}

func NewStreamEmitter(writer io.Writer) Emitter {
	return &StreamEmitter{writer: writer}
}

func (e *StreamEmitter) WriteSchema(stream string, schema Schema, keyProperties []string) error {
	return e.write(message{
		Type:          "SCHEMA",
		Stream:        stream,
		Schema:        schema,
		KeyProperties: keyProperties,
	})
}

func (e *StreamEmitter) WriteRecords(stream string, records []any) error {
	for _, record := range records {
		err := e.write(message{
			Type:   "RECORD",
			Stream: stream,
			Record: record,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *StreamEmitter) WriteState(state any) error {
	return e.write(message{
		Type:  "STATE",
		Value: state,
	})
}

func (e *StreamEmitter) write(msg message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = e.writer.Write(data)
	return err
}
