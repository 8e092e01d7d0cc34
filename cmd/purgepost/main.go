// Script de operação: remove fisicamente um post e todas as linhas
// dependentes. Uso:
//
//	purgepost <post_id> [email_do_admin]
//
// Sem e-mail o script pula o gate de admin (execução direta por operador
// com acesso ao banco). Sai com 0 em caso de sucesso, 1 caso contrário.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vsugamele/clubedasbrabas-sub002/internal/config"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/database"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/moderation"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/post"
	"github.com/vsugamele/clubedasbrabas-sub002/internal/storage"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "uso: purgepost <post_id> [email_do_admin]")
		os.Exit(1)
	}
	postID := os.Args[1]

	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		fmt.Fprintln(os.Stderr, "SUPABASE_DB_URL ausente")
		os.Exit(1)
	}

	database.Connect(cfg.DBUrl)

	// Sem S3 a limpeza de mídia vira no-op; a remoção no banco segue.
	if err := storage.InitS3(); err != nil {
		fmt.Fprintf(os.Stderr, "S3 indisponível, mídias não serão removidas: %v\n", err)
	}

	fmt.Printf("Removendo post %s...\n", postID)

	if len(os.Args) >= 3 {
		email := os.Args[2]
		authorizer := moderation.NewAuthorizer(cfg, database.DB)
		if !authorizer.IsAdmin(email) {
			fmt.Fprintln(os.Stderr, "Permissão insuficiente")
			os.Exit(1)
		}
		fmt.Printf("Admin confirmado: %s\n", email)
	}

	post.CleanupMedia(postID)
	fmt.Println("Mídias do S3 tratadas (melhor esforço)")

	if ok := moderation.Remove(database.DB, postID); !ok {
		fmt.Fprintln(os.Stderr, "Falha ao remover o post (não existe ou erro no banco)")
		os.Exit(1)
	}

	fmt.Println("Post removido com sucesso")
}
