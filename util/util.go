package util

import (
	cr "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var timePattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)

// EncodeToString generates a numeric code of the given length.
func EncodeToString(max int) (string, error) {
	table := [...]byte{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0'}
	b := make([]byte, max)
	n, err := io.ReadAtLeast(cr.Reader, b, max)
	if n != max {
		return "", err
	}
	for i := 0; i < len(b); i++ {
		b[i] = table[int(b[i])%len(table)]
	}
	return string(b), nil
}

// IsValidClockTime reports whether s is a 12-hour "hh:mm AM/PM" value.
func IsValidClockTime(s string) bool {
	return timePattern.MatchString(s)
}

func Contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

func SetResponse(data interface{}, status int, message string) map[string]interface{} {
	response := make(map[string]interface{})
	response["data"] = nil
	if data != nil {
		response["data"] = data
	}
	response["status"] = status
	response["message"] = message
	return response
}

func SetPaginationResponse(data interface{}, total, status int, message string) map[string]interface{} {
	response := map[string]interface{}{
		"data": map[string]interface{}{
			"info":  []int{},
			"total": 0,
		},
		"status":  status,
		"message": message,
	}
	if data != nil {
		response["data"].(map[string]interface{})["info"] = data
		response["data"].(map[string]interface{})["total"] = total
	}
	return response
}

func ParseDate(createDate interface{}) time.Time {
	if newDate, ok := createDate.(primitive.DateTime); ok {
		return newDate.Time()
	} else if newDate, ok := createDate.(string); ok {
		parsedTime, _ := time.Parse(time.RFC3339Nano, newDate)
		return parsedTime
	}
	return time.Time{}
}

func PrettyPrint(data ...interface{}) error {
	fmt.Println()
	byteData, err := json.MarshalIndent(data[len(data)-1], "", " ")
	if err != nil {
		return err
	}
	if len(data) == 1 {
		fmt.Print(data[:len(data)-1]...)
	} else {
		fmt.Println(data[:len(data)-1]...)
	}
	fmt.Println(string(byteData))
	fmt.Println()
	return nil
}

func RecoverGoroutinePanic(errChan chan<- error) {
	if r := recover(); r != nil {
		fmt.Println("Recovered from go routine panic:", r)
		if errChan != nil {
			errChan <- fmt.Errorf("error due to panic: %v", r)
		}
	}
}
