package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/vd437/quick-cash-control/store"
)

// CheckLowStock runs from the daily scheduler: it collects every product
// at or below its alert threshold and mails the list to the shop admin.
// Products that are fully out of stock are reported in their own section.
func CheckLowStock(s store.Store, mailer *Mailer, adminEmail string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	low, err := s.LowStockProducts(ctx)
	if err != nil {
		log.Printf("low stock check failed: %v", err)
		return
	}
	all, err := s.FindAllProducts(ctx)
	if err != nil {
		log.Printf("low stock check failed: %v", err)
		return
	}

	var b strings.Builder
	for _, p := range low {
		fmt.Fprintf(&b, "- %s: %d left (alert at %d)\n", p.Name, p.Quantity, p.LowStockAlert)
	}
	outCount := 0
	for _, p := range all {
		if p.Quantity == 0 {
			if outCount == 0 {
				b.WriteString("\nOut of stock:\n")
			}
			fmt.Fprintf(&b, "- %s\n", p.Name)
			outCount++
		}
	}

	if b.Len() == 0 {
		log.Println("low stock check: all products above their thresholds")
		return
	}

	subject := fmt.Sprintf("Stock report: %d low, %d out of stock", len(low), outCount)
	if !mailer.Enabled() {
		log.Printf("low stock check (mail disabled): %s", subject)
		return
	}
	if err := mailer.Send(adminEmail, subject, b.String()); err != nil {
		log.Printf("failed to send low stock report: %v", err)
		return
	}
	log.Printf("low stock report sent: %s", subject)
}
