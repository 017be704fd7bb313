package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
)

// storefront_client calls a running StorefrontService and prints the reply,
// e.g.
//
//	storefront_client -method SearchProducts -request '{"query":"iphone pro"}'
//	storefront_client -method HasPermission -request '{"memberId":"3","section":"products","minLevel":"write"}'
func main() {
	addr := flag.String("addr", "localhost:"+getEnvOrDefault("GRPC_PORT", "9090"), "gRPC server address")
	method := flag.String("method", storefront.MethodListCategories, "StorefrontService method name")
	request := flag.String("request", "{}", "JSON request body")
	timeout := flag.Duration("timeout", 5*time.Second, "call timeout")
	flag.Parse()

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(*request), &fields); err != nil {
		log.Fatalf("Invalid -request JSON: %v", err)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	reply, err := storefront.NewClient(conn).Call(ctx, *method, fields)
	if err != nil {
		log.Fatalf("%s failed: %v", *method, err)
	}

	out, err := json.MarshalIndent(reply.AsMap(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode reply: %v", err)
	}
	fmt.Println(string(out))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
