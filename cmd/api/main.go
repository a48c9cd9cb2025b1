package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/api/analyze"
	apichat "github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/api/chat"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/api/config"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/api/middleware"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/agent"
	corechat "github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/chat"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/prompt"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/store"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var agentMgr *agent.Manager

func main() {
	godotenv.Load()

	// Prompt library: built-in defaults first, file overrides on top.
	prompt.RegisterDefaults()
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to built-in prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Provider routing from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Analysis cache: Postgres when DATABASE_URL is set, file cache otherwise
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Database unavailable, using file cache: %v\n", err)
	}
	defer store.Close()

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Analysis endpoint; uploads are expensive so the limit is tight
	analyze.InitHandler(agentMgr)
	http.HandleFunc("/api/analyze", middleware.RateLimit(10, time.Minute, analyze.HandleAnalyze))
	http.HandleFunc("/api/analyze/fingerprint", analyze.HandleFingerprint)

	// Follow-up chat endpoints
	corechat.GetManager().SetAgentManager(agentMgr)
	http.HandleFunc("/api/chat/start", apichat.HandleStart)
	http.HandleFunc("/api/chat/message", middleware.RateLimit(30, time.Minute, apichat.HandleMessage))
	http.HandleFunc("/api/chat/history", apichat.HandleHistory)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/analyze")
	fmt.Println("  - POST /api/analyze/fingerprint")
	fmt.Println("  - POST /api/chat/start")
	fmt.Println("  - POST /api/chat/message")
	fmt.Println("  - GET  /api/chat/history")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
