package utils

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

func TimeTrack(start time.Time, name string) {
	fmt.Printf("%s took %s\n", name, time.Since(start))
}

func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}

// Atoi function that fatals instead of returing a tuple with an error
func Atoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalln(err)
	}
	return i
}

func Prompt() {
	bufio.NewReader(os.Stdin).ReadString('\n')
}
