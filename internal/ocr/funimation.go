package ocr

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// StartAnimation on stderr, keeping stdout clean for the result path. The
// returned func stops the animation and clears the line.
func StartAnimation() func() {
	t0 := time.Now()
	ticker := time.NewTicker(time.Second / 30)
	stop := make(chan struct{})
	done := make(chan struct{})
	termWidth, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		termWidth = 100
	}
	clearLine := strings.Repeat(" ", termWidth)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cTick := time.Since(t0)
				fmt.Fprintf(os.Stderr, "\r%v", clearLine)
				fmt.Fprintf(os.Stderr, "\rReading document: %v - %v", funimation(cTick), cTick.Truncate(time.Millisecond))
			case <-stop:
				fmt.Fprintf(os.Stderr, "\r%v\r", clearLine)
				return
			}
		}
	}()
	return func() {
		close(stop)
		<-done
	}
}

func funimation(t time.Duration) string {
	images := []string{
		"📄",
		"📃",
		"📑",
		"🔍",
		"🔎",
		"📝",
	}
	return images[int(t/(250*time.Millisecond))%len(images)]
}
