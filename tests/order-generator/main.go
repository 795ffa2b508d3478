package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const baseURL = "http://localhost:9000"

type OrderLine struct {
	MenuItemID int64 `json:"menu_item_id"`
	SizeID     int64 `json:"size_id"`
	Quantity   int   `json:"quantity"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type AddressInfo struct {
	AddressLine1 string `json:"address_line_1"`
	NoExterior   string `json:"no_exterior"`
	NoInterior   string `json:"no_interior,omitempty"`
}

type PaymentInfo struct {
	CardLastFour  string `json:"card_last_four,omitempty"`
	CardBrand     string `json:"card_brand,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type CreateOrderRequest struct {
	CustomerInfo CustomerInfo `json:"customer_info"`
	AddressInfo  AddressInfo  `json:"address_info"`
	PaymentInfo  PaymentInfo  `json:"payment_info"`
	Items        []OrderLine  `json:"items"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() CreateOrderRequest {
	// пары (позиция, размер) не повторяются: дубли сервис отклоняет
	seen := make(map[[2]int64]bool)
	items := make([]OrderLine, 0, rand.Intn(3)+1)
	for len(items) < cap(items) {
		pair := [2]int64{int64(rand.Intn(10) + 1), int64(rand.Intn(3) + 1)}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		items = append(items, OrderLine{
			MenuItemID: pair[0],
			SizeID:     pair[1],
			Quantity:   rand.Intn(4) + 1,
		})
	}
	return CreateOrderRequest{
		CustomerInfo: CustomerInfo{
			Name:  "Customer " + randomString(5),
			Phone: fmt.Sprintf("+%d", rand.Intn(9999999999)),
			Email: fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		},
		AddressInfo: AddressInfo{
			AddressLine1: fmt.Sprintf("Street %d", rand.Intn(100)),
			NoExterior:   fmt.Sprintf("%d", rand.Intn(200)+1),
		},
		PaymentInfo: PaymentInfo{
			CardLastFour:  fmt.Sprintf("%04d", rand.Intn(10000)),
			CardBrand:     "visa",
			TransactionID: "txn_" + randomString(16),
		},
		Items: items,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)

			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/orders", bytes.NewReader(data))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Device-ID", "generator-"+randomString(8))

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				log.Println("create order failed:", err)
				continue
			}
			log.Println("order created", resp.Status)
			resp.Body.Close()
		case <-ctx.Done():
			return
		}
	}
}
