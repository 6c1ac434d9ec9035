package changeset

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"

	pb "github.com/jamesainslie/go-udfix/internal/proto"
)

// snapshotVersion is bumped whenever the message layout changes.
const snapshotVersion = 1

// Encode serializes idx as a pb.Snapshot. Output is deterministic.
func Encode(idx *Index) ([]byte, error) {
	snap := &pb.Snapshot{Version: snapshotVersion}
	for _, name := range sortedKeys(idx.Documents) {
		snap.Documents = append(snap.Documents, toProtoDocument(idx.Documents[name]))
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

func toProtoDocument(d *DocumentCorrection) *pb.Document {
	doc := &pb.Document{Name: d.Name}
	for _, id := range sortedKeys(d.Sentences) {
		s := d.Sentences[id]
		sent := &pb.Sentence{Id: s.ID, Text: s.Text}
		for _, wid := range sortedWordIDs(s.Words) {
			w := s.Words[wid]
			sent.Words = append(sent.Words, &pb.Word{
				Id:       w.ID,
				Form:     w.Form,
				OldUpos:  w.OldUPOS,
				OldXpos:  w.OldXPOS,
				OldFeats: w.OldFeats,
				NewUpos:  w.NewUPOS,
				NewXpos:  w.NewXPOS,
				NewFeats: w.NewFeats,
			})
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	return doc
}

// Decode parses a snapshot produced by Encode. Document names and sentence
// ids are checked with the same rules Parse applies, so WithSuffix holds
// for snapshots too.
func Decode(data []byte, opts ...Option) (*Index, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var snap pb.Snapshot
	if err := proto.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: parsing protobuf: %w", ErrInvalidSnapshot, err)
	}
	if snap.GetVersion() != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, snap.GetVersion())
	}
	if len(snap.GetDocuments()) == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrInvalidSnapshot)
	}

	idx := NewIndex()
	for _, d := range snap.GetDocuments() {
		if err := addDocument(idx, d, cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}
	return idx, nil
}

func addDocument(idx *Index, d *pb.Document, cfg config) error {
	name := d.GetName()
	if !strings.HasSuffix(name, cfg.suffix) {
		return fmt.Errorf("document name %q does not end in %q", name, cfg.suffix)
	}
	if idx.HasDocument(name) {
		return fmt.Errorf("duplicate document %q", name)
	}

	doc := idx.document(name)
	for _, s := range d.GetSentences() {
		id := s.GetId()
		switch {
		case id == "":
			return fmt.Errorf("sentence without id in document %q", name)
		case !strings.HasPrefix(name, sentenceStem(id)):
			return fmt.Errorf("sentence id %q does not belong to document %q", id, name)
		case s.GetText() == "":
			return fmt.Errorf("sentence %q has no text", id)
		case len(s.GetWords()) == 0:
			return fmt.Errorf("sentence %q has no words", id)
		}
		if _, dup := doc.Sentences[id]; dup {
			return fmt.Errorf("duplicate sentence %q", id)
		}

		sent := &SentenceCorrection{ID: id, Text: s.GetText(), Words: make(map[string]WordCorrection)}
		for _, w := range s.GetWords() {
			if n, err := strconv.Atoi(w.GetId()); err != nil || n < 1 {
				return fmt.Errorf("word position %q in sentence %q is not a positive integer", w.GetId(), id)
			}
			if _, dup := sent.Words[w.GetId()]; dup {
				return fmt.Errorf("duplicate word %s in sentence %q", w.GetId(), id)
			}
			sent.Words[w.GetId()] = WordCorrection{
				ID:       w.GetId(),
				Form:     w.GetForm(),
				OldUPOS:  w.GetOldUpos(),
				OldXPOS:  w.GetOldXpos(),
				OldFeats: w.GetOldFeats(),
				NewUPOS:  w.GetNewUpos(),
				NewXPOS:  w.GetNewXpos(),
				NewFeats: w.GetNewFeats(),
			}
		}
		doc.Sentences[id] = sent
	}
	return nil
}
