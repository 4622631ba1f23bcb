//go:build js && wasm

// Command eyes is the browser half of the home page. Build with
//
//	GOOS=js GOARCH=wasm go build -o pkg/eyes.wasm ./cmd/eyes
package main

import (
	"os"

	"github.com/ozpv/ozpv/internal/dom"
	"github.com/ozpv/ozpv/internal/tracker"
	"github.com/ozpv/ozpv/internal/utils"
	"github.com/ozpv/ozpv/internal/viewport"
)

func main() {
	logger := utils.NewWriterLogger(os.Stdout)

	var layout viewport.Classifier
	mode := layout.Init(dom.InnerWidth)
	if err := layout.Err(); err != nil {
		logger.Warnf("keeping %s layout: %v", mode, err)
	}
	dom.SetLayout(mode)
	if mode != viewport.Desktop {
		return
	}

	eyes := tracker.New(dom.Document{Container: tracker.ContainerID}, tracker.DefaultEyes())
	done, err := eyes.Attach(dom.Window{}, dom.Window{})
	if err != nil {
		logger.Errorf("mount eye tracker: %v", err)
		return
	}
	<-done
}
