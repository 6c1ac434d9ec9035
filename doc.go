// Package udfix applies word-level annotation fixes to a CoNLL-U corpus.
//
// A change list names, per document and sentence, the words whose UPOS,
// XPOS or FEATS columns must change, together with the values those columns
// are expected to hold today. Every expectation is checked against the
// corpus; any disagreement aborts the run.
//
// # Quick Start
//
//	fx, err := udfix.New("UD_XPOS_fixes_train.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := fx.Run(ctx, "UD2_8/Train", "UD2_8/Train_fix")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("applied %d corrections\n", len(report.Applied))
//
// # Change Lists
//
// Change lists are tab-separated files, see package changeset for the
// grammar. A parsed change list can be compiled into a protobuf snapshot
// (".pb") with changeset.WriteSnapshot; New loads either form.
//
// # Thread Safety
//
// Fixer is safe for concurrent use. Run patches documents on a bounded
// pool of goroutines, configurable via WithWorkers, sharing the read-only
// change index.
package udfix
