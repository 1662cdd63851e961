package dev

import (
	"fmt"
	tea "github.com/charmbracelet/bubbletea/v2"
	"log"
	"os"
	"strings"
)

var debugSet = os.Getenv("RIG_DEBUG")
var debugPath = os.Getenv("RIG_DEBUG_PATH")

func Debug(msg string) {
	if debugPath == "" {
		debugPath = "rig.log"
	}
	if debugSet != "" {
		file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		logger := log.New(file, "", log.Ldate|log.Lmicroseconds)
		logger.Printf("%q", msg)
	}
}

func DebugMsg(component string, msg tea.Msg) {
	// skip logging messages that are too frequent
	if strings.HasSuffix(fmt.Sprintf("%T", msg), "FlushScrollMsg") {
		return
	}
	Debug("--")
	Debug(fmt.Sprintf("Update %s: %T", component, msg))
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		Debug(fmt.Sprintf("  Key: '%v'", keyMsg.String()))
	}
}
