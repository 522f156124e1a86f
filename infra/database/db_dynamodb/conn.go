package db_dynamodb

import (
	"fmt"

	"logiflow/infra/database"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	log "github.com/sirupsen/logrus"
)

// NewClient builds a DynamoDB client. Endpoint points it at a local DynamoDB;
// local instances still need static credentials even though they ignore them.
func NewClient(config *database.DynamoConfig) *dynamodb.DynamoDB {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}

	accessKey, secretKey := config.AccessKeyID, config.SecretAccessKey
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		if accessKey == "" {
			accessKey, secretKey = "local", "local"
		}
	}
	if accessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		panic(fmt.Sprintf("failed to create session: %v", err))
	}

	log.WithFields(log.Fields{
		"region":   config.Region,
		"endpoint": config.Endpoint,
	}).Info("cliente dynamodb criado")

	return dynamodb.New(sess)
}
