package serializer

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/analyzer"
	"github.com/hyp3rd/analyzer/internal/sentinel"
)

func TestSerializer_SnapshotRoundTrip(t *testing.T) {
	snapshot := analyzer.New("Sensor-B", analyzer.WithSamples(10, 20, 30)).Snapshot()

	for _, format := range []string{"json", "msgpack", "cbor"} {
		t.Run(format, func(t *testing.T) {
			s, err := New(format)
			assert.Nil(t, err)

			data, err := s.Marshal(snapshot)
			assert.Nil(t, err)
			assert.True(t, len(data) > 0)

			var got analyzer.Snapshot
			assert.Nil(t, s.Unmarshal(data, &got))

			assert.Equal(t, "Sensor-B", got.Name)
			assert.Equal(t, []int64{10, 20, 30}, got.Samples)
			assert.Equal(t, 20.0, got.Summary.Mean)
		})
	}
}

func TestSerializer_DefaultIsJSON(t *testing.T) {
	s, err := New("default")
	assert.Nil(t, err)

	data, err := s.Marshal(analyzer.New("Sensor-A").Snapshot())
	assert.Nil(t, err)

	// JSON is self-describing enough to spot-check.
	assert.True(t, len(data) > 0)
	assert.Equal(t, byte('{'), data[0])
}

func TestSerializer_UnknownFormat(t *testing.T) {
	_, err := New("xml")
	if !errors.Is(err, sentinel.ErrSerializerNotFound) {
		t.Fatalf("expected ErrSerializerNotFound, got %v", err)
	}

	_, err = New("")
	if !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Fatalf("expected ErrParamCannotBeEmpty, got %v", err)
	}
}

func TestSerializer_CustomRegistration(t *testing.T) {
	registry := NewEmptySerializerRegistry()

	_, err := registry.New("json")
	if !errors.Is(err, sentinel.ErrSerializerNotFound) {
		t.Fatalf("expected ErrSerializerNotFound on empty registry, got %v", err)
	}

	registry.Register("json", func() ISerializer { return &JSONSerializer{} })

	s, err := registry.New("json")
	assert.Nil(t, err)
	assert.True(t, s != nil)
}
