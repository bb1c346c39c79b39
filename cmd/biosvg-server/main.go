// Command biosvg-server is a demo captcha backend: it issues SVG captcha
// challenges and verifies submitted answers. Challenge storage lives here,
// not in the library, so real deployments can swap in their own store.
package main

import (
	"log"
	"net/http"
)

var cfg *Config

func main() {
	var err error
	cfg, err = LoadConfig("biosvg.yaml")
	if err != nil {
		log.Fatal(err)
	}

	http.Handle("/", http.FileServer(http.Dir("./static")))
	http.HandleFunc("/api/challenge/start", handleStart)
	http.HandleFunc("/api/challenge/verify", handleVerify)

	log.Println("Server listening on " + cfg.Listen)
	log.Fatal(http.ListenAndServe(cfg.Listen, nil))
}
