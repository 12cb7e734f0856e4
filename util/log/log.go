package log

import (
	"log"
	"os"
)

var Info = log.New(os.Stdout, "", log.Ldate|log.Ltime)
var Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
