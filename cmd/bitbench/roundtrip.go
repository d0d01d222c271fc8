package main

import (
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dbechrd/bitstream"
)

func roundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip",
		Short: "Encode a sample payload, decode it back, and report field equality",
		Run: func(cmd *cobra.Command, args []string) {
			want := samplePayload(seed)

			buf := make([]byte, 256)
			w := bitstream.NewBitWriter(buf)
			ws := bitstream.NewWriterStream(&w)
			wv := want
			if !serializePayload(ws, &wv) {
				log.Error("write routine rejected the payload")
				os.Exit(1)
			}
			if err := ws.Flush(); err != nil {
				log.WithError(err).Error("flush failed")
				os.Exit(1)
			}
			log.WithFields(logrus.Fields{
				"bits_written":  ws.BitsProcessed(),
				"bytes_written": ws.BytesProcessed(),
			}).Debug("encoded payload")

			r := bitstream.NewBitReader(buf)
			rs := bitstream.NewReaderStream(&r)
			// sequence is the baseline of the relative field and is not
			// on the wire, so the decoder must start from the same value.
			got := payload{sequence: want.sequence}
			if !serializePayload(rs, &got) {
				log.Error("reader rejected a freshly written frame")
				os.Exit(1)
			}

			// health01 goes through SerializeCompressedFloat, which is
			// lossy by up to half its 0.01 resolution; every other field
			// must come back exactly.
			healthErr := math.Abs(float64(got.health01 - want.health01))
			got.health01 = want.health01
			if got != want || healthErr > 0.005 {
				log.WithFields(logrus.Fields{
					"want": want,
					"got":  got,
				}).Error("round-trip mismatch")
				os.Exit(1)
			}
			log.Info("round-trip OK")
		},
	}
}
