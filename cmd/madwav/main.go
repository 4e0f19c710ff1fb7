// SPDX-License-Identifier: EPL-2.0

// Command madwav decodes an MPEG audio file to a 16-bit PCM WAV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/wav"

	mad "github.com/dzamkov/go-mad"
	"github.com/dzamkov/go-mad/engine/gomp3"
)

func main() {
	verbose := flag.Bool("v", false, "report skipped frames and decode errors")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: madwav [-v] <input.mp3> <output.wav>")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	d := mad.NewDecoder(gomp3.New())
	defer d.Close()
	d.SetInput(data)

	var enc *wav.Encoder
	frames := 0
	for {
		if !d.DecodeFrame() {
			if d.Recoverable() {
				if *verbose {
					log.Printf("skipping frame at %d: %s", d.CurrentFrame(), d.ErrorMessage())
				}
				d.SetErr(mad.ErrNone)
				continue
			}
			break
		}
		if err := d.SynthFrame(); err != nil {
			if *verbose {
				log.Printf("synthesis failed at %d: %v", d.CurrentFrame(), err)
			}
			continue
		}

		frame := mad.PCM{
			SampleRate: d.SampleRate(),
			Channels:   d.Channels(),
			Samples:    d.Output(),
		}
		if enc == nil {
			enc = wav.NewEncoder(out, frame.SampleRate, 16, frame.Channels, 1)
		}
		if err := enc.Write(frame.IntBuffer()); err != nil {
			log.Fatal(err)
		}
		frames++
	}

	if d.Err() != mad.ErrBufferLen {
		log.Fatalf("decoding stopped: %s", d.ErrorMessage())
	}
	if enc == nil {
		log.Fatal("no decodable audio found")
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %d frames (%d samples/channel) to %s",
		frames, frames*mad.FrameSampleCount, flag.Arg(1))
}
