// SPDX-License-Identifier: EPL-2.0

// Command madplay decodes an MPEG audio file and plays it on the default
// audio device.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	mad "github.com/dzamkov/go-mad"
	"github.com/dzamkov/go-mad/engine/gomp3"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: madplay <input.mp3>")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	r, err := mad.NewReader(gomp3.New(), data)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	op := &oto.NewContextOptions{
		SampleRate:   r.SampleRate(),
		ChannelCount: r.Channels(),
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		log.Fatal(err)
	}
	<-ready

	log.Printf("playing %s: %d Hz, %d channels", flag.Arg(0), r.SampleRate(), r.Channels())

	player := ctx.NewPlayer(r)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		log.Fatal(err)
	}
}
