package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dbechrd/bitstream"
)

// alignPaddingBit is the bit offset of the zero-padding inserted by the
// align call between the raw-bits run and the bool flag in
// serializePayload: health (7 bits) + score (20 bits) + flags (16 bits)
// = 43 bits, leaving 5 padding bits before byte 6 starts.
const alignPaddingBit = 43 + 2

func corruptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corrupt",
		Short: "Flip an alignment padding bit in a valid frame and show the reader reject it",
		Run: func(cmd *cobra.Command, args []string) {
			v := samplePayload(seed)

			buf := make([]byte, 256)
			w := bitstream.NewBitWriter(buf)
			ws := bitstream.NewWriterStream(&w)
			serializePayload(ws, &v)
			ws.Flush()

			buf[alignPaddingBit/8] ^= 1 << uint(alignPaddingBit%8)
			log.WithField("bit", alignPaddingBit).Debug("flipped alignment padding bit")

			r := bitstream.NewBitReader(buf)
			rs := bitstream.NewReaderStream(&r)
			var got payload
			ok := serializePayload(rs, &got)
			log.WithFields(logrus.Fields{
				"accepted": ok,
			}).Info("corrupted frame decode result")
			if ok {
				log.Error("expected the reader to reject the corrupted frame")
			}
		},
	}
}
