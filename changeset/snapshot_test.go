package changeset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"

	pb "github.com/jamesainslie/go-udfix/internal/proto"
)

func sampleIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Parse(strings.NewReader(changeList(
		"doc1.conllu",
		"doc1_s1",
		"Hello world.",
		"2\tworld\tNOUN\tS\t_\tPROPN\tH\t_",
		"10\tagain\tADV\tD\t_\t\t\tDegree=Pos",
		blank,
		"doc2.conllu",
		"doc2_7",
		"Teine lause.",
		"1\tTeine\tADJ\tA\t_\tNUM\tN\tNumType=Ord",
	)))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return idx
}

func encode(t *testing.T, idx *Index) []byte {
	t.Helper()
	data, err := Encode(idx)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return data
}

func marshal(t *testing.T, snap *pb.Snapshot) []byte {
	t.Helper()
	data, err := proto.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestSnapshot_EncodeDecode(t *testing.T) {
	idx := sampleIndex(t)

	got, err := Decode(encode(t, idx))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(idx, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	idx := sampleIndex(t)
	first := encode(t, idx)
	for i := 0; i < 10; i++ {
		if !bytes.Equal(first, encode(t, idx)) {
			t.Fatal("Encode() output differs between calls")
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", encode(t, sampleIndex(t))[:20]},
		{"garbage", []byte{0xff, 0xff, 0xff}},
		{"wrong version", marshal(t, &pb.Snapshot{Version: 99, Documents: []*pb.Document{{Name: "doc1.conllu"}}})},
		{"no documents", marshal(t, &pb.Snapshot{Version: snapshotVersion})},
		{"bad suffix", marshal(t, &pb.Snapshot{Version: snapshotVersion, Documents: []*pb.Document{{Name: "doc1.txt"}}})},
		{"foreign sentence", marshal(t, snapshotWith("doc1.conllu", "doc2_1", "Hello.", &pb.Word{Id: "1", Form: "Hello"}))},
		{"sentence without words", marshal(t, snapshotWith("doc1.conllu", "doc1_1", "Hello."))},
		{"sentence without text", marshal(t, snapshotWith("doc1.conllu", "doc1_1", "", &pb.Word{Id: "1", Form: "Hello"}))},
		{"word position zero", marshal(t, snapshotWith("doc1.conllu", "doc1_1", "Hello.", &pb.Word{Id: "0", Form: "Hello"}))},
		{"duplicate word", marshal(t, snapshotWith("doc1.conllu", "doc1_1", "Hello.",
			&pb.Word{Id: "1", Form: "Hello"}, &pb.Word{Id: "1", Form: "Hello"}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("expected ErrInvalidSnapshot, got %v", err)
			}
		})
	}
}

func snapshotWith(doc, sentID, text string, words ...*pb.Word) *pb.Snapshot {
	return &pb.Snapshot{
		Version: snapshotVersion,
		Documents: []*pb.Document{{
			Name:      doc,
			Sentences: []*pb.Sentence{{Id: sentID, Text: text, Words: words}},
		}},
	}
}

func TestDecode_WithSuffix(t *testing.T) {
	data := marshal(t, snapshotWith("doc1.txt", "doc1_1", "Hello.", &pb.Word{Id: "1", Form: "Hello", NewUpos: "INTJ"}))

	if _, err := Decode(data); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("default suffix: expected ErrInvalidSnapshot, got %v", err)
	}
	idx, err := Decode(data, WithSuffix(".txt"))
	if err != nil {
		t.Fatalf("Decode(WithSuffix) error = %v", err)
	}
	w, ok := idx.Word("doc1.txt", "doc1_1", "1")
	if !ok || w.NewUPOS != "INTJ" {
		t.Errorf("Word() = %+v, %v", w, ok)
	}
}

func TestLoad_SnapshotHonoursSuffix(t *testing.T) {
	pbPath := filepath.Join(t.TempDir(), "fixes.pb")
	if err := os.WriteFile(pbPath, marshal(t, snapshotWith("doc1.txt", "doc1_1", "Hello.", &pb.Word{Id: "1", Form: "Hello"})), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(pbPath); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("expected ErrInvalidSnapshot, got %v", err)
	}
	if _, err := Load(pbPath, WithSuffix("txt")); err != nil {
		t.Errorf("Load(WithSuffix) error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	idx := sampleIndex(t)

	tsv := filepath.Join(dir, "fixes.tsv")
	content := changeList("doc1.conllu", "doc1_s1", "Hello world.", "2\tworld\tNOUN\tS\t_\tPROPN\tH\t_")
	if err := os.WriteFile(tsv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	fromTSV, err := Load(tsv)
	if err != nil {
		t.Fatalf("Load(tsv) error = %v", err)
	}
	if _, ok := fromTSV.Word("doc1.conllu", "doc1_s1", "2"); !ok {
		t.Error("expected word 2 from TSV change list")
	}

	snapPath := filepath.Join(dir, "fixes.pb")
	if err := WriteSnapshot(snapPath, idx); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}
	fromPB, err := Load(snapPath)
	if err != nil {
		t.Fatalf("Load(snapshot) error = %v", err)
	}
	if diff := cmp.Diff(idx, fromPB); diff != "" {
		t.Errorf("Load(snapshot) mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "missing.tsv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
