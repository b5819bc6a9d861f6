package main

import (
	"fmt"
	"time"

	"github.com/agrimandi/agrimandi-server/cmd"
	"github.com/agrimandi/agrimandi-server/util"
)

func main() {
	currentTime := time.Now()
	istLocation, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		fmt.Println("Error loading IST timezone:", err)
		return
	}
	data := map[string]interface{}{
		"startTime": currentTime.In(istLocation).Format("January 02, 2006 - 03:04:05 PM MST (") + istLocation.String() + ")",
		"message":   "Starting agrimandi marketplace server . . .",
		"repo":      "agrimandi-server",
	}

	util.PrettyPrint(data)
	cmd.New().Execute()
}
