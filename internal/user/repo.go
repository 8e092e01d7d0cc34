package user

import "github.com/vsugamele/clubedasbrabas-sub002/internal/database"

func ExistsByEmail(email string) bool {
	var count int64
	database.DB.Model(&User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func ExistsByUsername(username string) bool {
	var count int64
	database.DB.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

// EmailByID busca o e-mail do usuário autenticado a partir do ID do token.
func EmailByID(userID string) string {
	var email string
	database.DB.Model(&User{}).Select("email").Where("id = ?", userID).Scan(&email)
	return email
}
