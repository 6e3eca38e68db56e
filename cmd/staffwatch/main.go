// staffwatch tails a staff member's assigned tasks from the terminal,
// refreshing the list every few seconds the way the mobile task screen does.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vehicle-rental-backend/internal/client"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
)

func main() {
	baseURL := flag.String("server", "http://localhost:8080", "API server base URL")
	email := flag.String("email", "", "Staff account email")
	password := flag.String("password", "", "Staff account password")
	interval := flag.Duration("interval", client.DefaultPollInterval, "Refresh interval")
	flag.Parse()

	logger.Initialize("info", "text")

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	c := client.New(*baseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user, err := c.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	if user.Role != domain.UserRoleStaff {
		log.Fatalf("account %s is not a staff account", *email)
	}
	fmt.Printf("Watching tasks for %s (refresh every %s)\n", user.Name, *interval)

	poller := client.NewTaskPoller(c, *interval, printTasks)
	go poller.Run(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nbye")
}

func printTasks(tasks []domain.StaffTask) {
	fmt.Printf("--- %s ---\n", time.Now().Format("15:04:05"))
	if len(tasks) == 0 {
		fmt.Println("no tasks assigned")
		return
	}
	for _, t := range tasks {
		line := fmt.Sprintf("#%d %-8s %-11s %s", t.ID, t.Type, t.Status, t.ScheduledTime.Format("Mon 02 Jan 3:04 PM"))
		if t.Booking != nil {
			line += fmt.Sprintf("  booking %s", t.Booking.Reference)
			if t.Booking.DeliveryAddress != "" {
				line += "  @ " + t.Booking.DeliveryAddress
			}
		}
		fmt.Println(line)
	}
}
