package environment

import "os"

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func GetStorageBucket() string {
	return os.Getenv("FIREBASE_STORAGE_BUCKET")
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}
