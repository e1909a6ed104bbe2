package main

import (
	"fmt"

	aws "github.com/pulumi/pulumi-aws/sdk/v6/go/aws"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/cloudwatch"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/iam"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/lambda"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		project := ctx.Project()
		stack := ctx.Stack()

		cfg, err := loadSettings(ctx.GetConfig)
		if err != nil {
			return err
		}

		// Create a single AWS provider with default tags applied to all supported resources.
		prov, err := aws.NewProvider(ctx, "prov", &aws.ProviderArgs{
			DefaultTags: &aws.ProviderDefaultTagsArgs{
				Tags: pulumi.StringMap{
					"Project":   pulumi.String(project),
					"Stack":     pulumi.String(stack),
					"ManagedBy": pulumi.String("Pulumi"),
				},
			},
		})
		if err != nil {
			return err
		}
		awsOpts := pulumi.Provider(prov)

		// Lambda assume role policy
		lambdaAssumeRolePolicy, err := iam.GetPolicyDocument(ctx, &iam.GetPolicyDocumentArgs{
			Statements: []iam.GetPolicyDocumentStatement{
				{
					Effect: pulumi.StringRef("Allow"),
					Principals: []iam.GetPolicyDocumentStatementPrincipal{
						{
							Type: "Service",
							Identifiers: []string{
								"lambda.amazonaws.com",
							},
						},
					},
					Actions: []string{
						"sts:AssumeRole",
					},
				},
			},
		}, nil)
		if err != nil {
			return err
		}

		// The greeter touches no AWS APIs, so basic execution (logs only) is all it gets.
		greeterRole, err := iam.NewRole(ctx, fmt.Sprintf("%s-%s-greeter-role", project, stack), &iam.RoleArgs{
			AssumeRolePolicy: pulumi.String(lambdaAssumeRolePolicy.Json),
		}, awsOpts)
		if err != nil {
			return err
		}
		_, err = iam.NewRolePolicyAttachment(ctx, fmt.Sprintf("%s-%s-greeter-basic", project, stack), &iam.RolePolicyAttachmentArgs{
			Role:      greeterRole.Name,
			PolicyArn: pulumi.String("arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"),
		}, awsOpts)
		if err != nil {
			return err
		}

		// Created up front so retention applies from the first invocation
		fnName := fmt.Sprintf("%s-%s-greeter", project, stack)
		logGroup, err := cloudwatch.NewLogGroup(ctx, fmt.Sprintf("%s-logs", fnName), &cloudwatch.LogGroupArgs{
			Name:            pulumi.String("/aws/lambda/" + fnName),
			RetentionInDays: pulumi.Int(cfg.LogRetentionDays),
		}, awsOpts)
		if err != nil {
			return err
		}

		greeterZip := pulumi.NewFileArchive(cfg.ArtifactPath)
		greeterFn, err := lambda.NewFunction(ctx, fnName, &lambda.FunctionArgs{
			Name:          pulumi.String(fnName),
			Role:          greeterRole.Arn,
			Runtime:       pulumi.String("provided.al2023"),
			Handler:       pulumi.String("bootstrap"),
			Architectures: pulumi.ToStringArray([]string{cfg.Architecture}),
			MemorySize:    pulumi.Int(cfg.MemorySize),
			Timeout:       pulumi.Int(cfg.Timeout),
			Code:          greeterZip,
		}, awsOpts, pulumi.DependsOn([]pulumi.Resource{logGroup}))
		if err != nil {
			return err
		}

		ctx.Export("greeterLambda", greeterFn.Name)
		ctx.Export("greeterLambdaArn", greeterFn.Arn)
		ctx.Export("greeterLogGroup", logGroup.Name)
		ctx.Export("region", aws.GetRegionOutput(ctx, aws.GetRegionOutputArgs{}).Name())
		return nil
	})
}
