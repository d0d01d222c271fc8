package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dbechrd/bitstream"
)

func measureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measure",
		Short: "Predict the bit cost of the sample payload and compare it to the actual write cost",
		Run: func(cmd *cobra.Command, args []string) {
			want := samplePayload(seed)

			ms := bitstream.NewMeasureStream()
			mv := want
			serializePayload(ms, &mv)

			buf := make([]byte, 256)
			w := bitstream.NewBitWriter(buf)
			ws := bitstream.NewWriterStream(&w)
			wv := want
			serializePayload(ws, &wv)
			ws.Flush()

			log.WithFields(logrus.Fields{
				"measured_bits": ms.BitsProcessed(),
				"actual_bits":   ws.BitsProcessed(),
				"slop":          ms.BitsProcessed() - ws.BitsProcessed(),
			}).Info("measure vs. write")
		},
	}
}
