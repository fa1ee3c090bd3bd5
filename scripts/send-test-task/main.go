// scripts/send-test-task/main.go
//
// Posts a sample submission to a running webui, the same way the browser
// form does. Handy for smoke-testing a deployment without clicking through
// the page.
//
// Usage:
//   go run scripts/send-test-task/main.go                  # targets http://localhost:8080
//   go run scripts/send-test-task/main.go http://host:port

package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

func main() {
	base := "http://localhost:8080"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	now := time.Now().Add(time.Hour)
	form := url.Values{}
	form.Set("task_name", "Smoke test task")
	form.Set("task_start", now.Format("2006-1-2"))
	form.Set("task_time", now.Format("15:4"))
	form.Set("repeat_info", "once")

	fmt.Printf("POST %s with %v\n", base, form)

	resp, err := http.PostForm(base, form)
	if err != nil {
		log.Fatalf("Failed to reach the webui at %s: %v", base, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	fmt.Printf("Status: %s\n", resp.Status)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Body:\n%s\n", body)
		log.Fatal("Submission was rejected")
	}

	fmt.Println("Submission accepted")
}
