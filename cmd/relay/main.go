package main

import (
	"flag"
	"log"
	"net/http"

	"prpcap/internal/relay"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	srv := relay.NewServer()
	log.Println("relay listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Handler()))
}
