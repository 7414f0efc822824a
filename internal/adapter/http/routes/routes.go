package routes

import (
	"log"

	_ "contract_monthly_claim/docs"
	"contract_monthly_claim/internal/adapter/http/handlers"
	"contract_monthly_claim/internal/adapter/persistence/repository"
	"contract_monthly_claim/internal/config"
	"contract_monthly_claim/internal/infrastructure/database"
	"contract_monthly_claim/internal/infrastructure/encryption"
	"contract_monthly_claim/internal/infrastructure/identity"
	"contract_monthly_claim/internal/infrastructure/storage"
	"contract_monthly_claim/internal/usecase"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run(env config.Env) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closeStores := getRoutes(env)
	defer closeStores()

	if err := router.Run(":" + env.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(env config.Env) func() {
	claimRepo, identityDir, closeStores := buildStores(env)

	key, err := encryption.KeyFromSecret(env.DocumentEncryptionKey)
	if err != nil {
		log.Fatalf("invalid DOCUMENT_ENCRYPTION_KEY: %v", err)
	}
	cipher, err := encryption.NewAESGCMCipher(key)
	if err != nil {
		log.Fatalf("failed to build document cipher: %v", err)
	}

	vault := usecase.NewDocumentVault(cipher, buildContentStore(env))
	claimUseCase := usecase.NewClaimUseCase(claimRepo, identityDir, vault)
	queryUseCase := usecase.NewClaimQueryUseCase(claimRepo, vault)

	claimHandler := handlers.NewClaimHandler(claimUseCase, queryUseCase)
	reportHandler := handlers.NewReportHandler(queryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	if env.DevBypassAuth {
		log.Printf("[auth][routes] DEV_BYPASS_AUTH enabled; trusting X-User-Sub/X-User-Roles headers")
	}
	addClaimRoutes(v1, env, claimHandler)
	addReportRoutes(v1, env, reportHandler)
	return closeStores
}

func buildStores(env config.Env) (interfaces.IClaimRepository, interfaces.IIdentityDirectory, func()) {
	closers := []func() error{}
	var ddb *dynamodb.Client
	dynamo := func() *dynamodb.Client {
		if ddb == nil {
			ddb = database.ConnectDynamoDB(env)
		}
		return ddb
	}

	var claimRepo interfaces.IClaimRepository
	switch env.ClaimsStore {
	case config.StoreBolt:
		boltRepo, err := repository.NewClaimBoltRepository(env.BoltPath)
		if err != nil {
			log.Fatalf("failed to open bolt store path=%s: %v", env.BoltPath, err)
		}
		closers = append(closers, boltRepo.Close)
		claimRepo = boltRepo
	default:
		claimRepo = repository.NewClaimDynamoRepository(dynamo(), env.ClaimsTable, env.ClaimCountersTable)
	}
	log.Printf("[claim][routes] claims store=%s", env.ClaimsStore)

	var identityDir interfaces.IIdentityDirectory
	switch env.IdentitySource {
	case config.SourceFile:
		dir, err := identity.NewFileIdentityDirectory(env.IdentitySeedFile)
		if err != nil {
			log.Fatalf("failed to load identity seed file=%s: %v", env.IdentitySeedFile, err)
		}
		identityDir = dir
	default:
		identityDir = repository.NewUserProfileDynamoRepository(dynamo(), env.UsersTable)
	}

	return claimRepo, identityDir, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("[claim][routes] close store failed err=%v", err)
			}
		}
	}
}

func buildContentStore(env config.Env) interfaces.IContentStore {
	switch env.ContentStore {
	case config.StoreFilesystem:
		log.Printf("[vault][routes] content store=filesystem dir=%s", env.UploadsDir)
		return storage.NewFilesystemContentStore(env.UploadsDir)
	default:
		log.Printf("[vault][routes] content store=s3 bucket=%s", env.DocumentsBucket)
		return storage.NewS3ContentStore(database.ConnectS3(env), env.DocumentsBucket)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.MaxMultipartMemory = handlers.MaxSubmissionBody
}
