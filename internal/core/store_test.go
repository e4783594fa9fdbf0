package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

// mapSource serves datasets from memory and can fail chosen names.
type mapSource struct {
	mu    sync.Mutex
	data  map[string]string
	fail  map[string]error
	reads []string
}

func (m *mapSource) ReadDataset(ctx context.Context, name string) (string, error) {
	m.mu.Lock()
	m.reads = append(m.reads, name)
	m.mu.Unlock()

	if err := m.fail[name]; err != nil {
		return "", err
	}
	raw, ok := m.data[name]
	if !ok {
		return "", ErrSourceNotFound
	}
	return raw, nil
}

func twoDatasets() ([]DatasetDefinition, *mapSource) {
	defs := []DatasetDefinition{
		testDefinition("blocking", "blocking.csv", 1),
		testDefinition("lost", "lost.csv", 2),
	}
	defs[0].Info.PayloadKey = "multipleAttemptsData"
	defs[1].Info.PayloadKey = "failedSemestersData"

	src := &mapSource{data: map[string]string{
		"blocking.csv": "CODIGO_ESTUDIANTE,LOGIN\n1,a\n2,b\n",
		"lost.csv":     "CODIGO_ESTUDIANTE,LOGIN\n3,c\n",
	}}
	return defs, src
}

func TestLoadSnapshot(t *testing.T) {
	defer goleak.VerifyNone(t)

	defs, src := twoDatasets()
	snap, err := LoadSnapshot(context.Background(), src, defs)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if snap.ID.String() == "" || snap.LoadedAt.IsZero() {
		t.Error("snapshot missing ID or load time")
	}

	var keys []string
	for _, d := range snap.Datasets() {
		keys = append(keys, d.Def.Info.Key)
	}
	if diff := cmp.Diff([]string{"blocking", "lost"}, keys); diff != "" {
		t.Errorf("Datasets() order mismatch (-want +got):\n%s", diff)
	}

	blocking, ok := snap.Dataset("blocking")
	if !ok {
		t.Fatal("blocking dataset missing")
	}
	if blocking.Len() != 2 {
		t.Errorf("blocking.Len() = %d, want 2", blocking.Len())
	}
	if blocking.SourceBytes != int64(len(src.data["blocking.csv"])) {
		t.Errorf("SourceBytes = %d, want %d", blocking.SourceBytes, len(src.data["blocking.csv"]))
	}

	payload := snap.Payload()
	want := map[string][]map[string]string{
		"multipleAttemptsData": {{"CODIGO_ESTUDIANTE": "1", "LOGIN": "a"}, {"CODIGO_ESTUDIANTE": "2", "LOGIN": "b"}},
		"failedSemestersData":  {{"CODIGO_ESTUDIANTE": "3", "LOGIN": "c"}},
	}
	got := make(map[string][]map[string]string, len(payload))
	for k, v := range payload {
		got[k] = rows(v)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Payload() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSnapshot_AllOrNothing(t *testing.T) {
	defer goleak.VerifyNone(t)

	defs, src := twoDatasets()
	boom := errors.New("disk on fire")
	src.fail = map[string]error{"lost.csv": boom}

	snap, err := LoadSnapshot(context.Background(), src, defs)
	if err == nil {
		t.Fatal("LoadSnapshot succeeded with a failing source")
	}
	if snap != nil {
		t.Error("LoadSnapshot returned a partial snapshot")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error %v does not wrap the source error", err)
	}
	if MapError(err).Code != "SRC002" {
		t.Errorf("MapError code = %q, want SRC002", MapError(err).Code)
	}
}

func TestLoadSnapshot_MissingSource(t *testing.T) {
	defs, src := twoDatasets()
	delete(src.data, "blocking.csv")

	_, err := LoadSnapshot(context.Background(), src, defs)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("error = %v, want ErrSourceNotFound", err)
	}
}

func TestLoadSnapshot_ReadsEverySourceOnce(t *testing.T) {
	defs, src := twoDatasets()
	if _, err := LoadSnapshot(context.Background(), src, defs); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(src.reads) != 2 {
		t.Errorf("reads = %v, want one per dataset", src.reads)
	}
}

func TestSnapshot_RecordsAreCopies(t *testing.T) {
	defs, src := twoDatasets()
	snap, err := LoadSnapshot(context.Background(), src, defs)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	d, _ := snap.Dataset("blocking")
	recs := d.Records()
	recs[0] = RecordOf("CODIGO_ESTUDIANTE", "mutated")

	again, _ := snap.Dataset("blocking")
	if again.Records()[0].Value("CODIGO_ESTUDIANTE") != "1" {
		t.Error("caller mutation leaked into the snapshot")
	}
}
