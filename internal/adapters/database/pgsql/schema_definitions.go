package pgsql

// tableDefinition declares one table: its creation DDL, indexes and the
// tables it references. The apply order is derived from dependsOn, never
// hardcoded. Every statement is phrased so re-execution is a no-op, which
// makes concurrent cold starts race-safe.
type tableDefinition struct {
	name      string
	dependsOn []string
	createSQL string
	indexes   []string
}

// uuidDefaultBackfill re-applies the uuid default on a primary-key column.
// A prior partial run may have created the table without it.
const uuidDefaultBackfill = `ALTER TABLE %s ALTER COLUMN "id" SET DEFAULT uuid_generate_v4()::text`

// createUUIDExtension enables server-side uuid generation for primary keys.
const createUUIDExtension = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

// probeRootTable is the cheapest possible existence check for the schema.
const probeRootTable = `SELECT 1 FROM "Organization" LIMIT 1`

// schemaDefinitions declares the full persisted layout. Table and column
// identifiers are quoted camel case so the store stays compatible with
// databases provisioned by earlier deployments of this system.
var schemaDefinitions = []tableDefinition{
	{
		name: `"Organization"`,
		createSQL: `
			CREATE TABLE IF NOT EXISTS "Organization" (
				"id" TEXT PRIMARY KEY DEFAULT uuid_generate_v4()::text,
				"name" TEXT NOT NULL,
				"description" TEXT,
				"address" TEXT,
				"phone" TEXT,
				"email" TEXT,
				"createdAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				"updatedAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS "Organization_name_idx" ON "Organization"("name")`,
		},
	},
	{
		name:      `"User"`,
		dependsOn: []string{`"Organization"`},
		createSQL: `
			CREATE TABLE IF NOT EXISTS "User" (
				"id" TEXT PRIMARY KEY DEFAULT uuid_generate_v4()::text,
				"email" TEXT UNIQUE NOT NULL,
				"password" TEXT NOT NULL,
				"firstName" TEXT NOT NULL,
				"lastName" TEXT NOT NULL,
				"phone" TEXT,
				"role" TEXT NOT NULL DEFAULT 'USER',
				"isActive" BOOLEAN NOT NULL DEFAULT true,
				"organizationId" TEXT NOT NULL,
				"createdAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				"updatedAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				CONSTRAINT "User_organizationId_fkey" FOREIGN KEY ("organizationId")
					REFERENCES "Organization"("id") ON DELETE CASCADE ON UPDATE CASCADE
			)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS "User_email_idx" ON "User"("email")`,
			`CREATE INDEX IF NOT EXISTS "User_organizationId_idx" ON "User"("organizationId")`,
		},
	},
	{
		name:      `"Category"`,
		dependsOn: []string{`"Organization"`},
		createSQL: `
			CREATE TABLE IF NOT EXISTS "Category" (
				"id" TEXT PRIMARY KEY DEFAULT uuid_generate_v4()::text,
				"name" TEXT NOT NULL,
				"description" TEXT,
				"type" TEXT NOT NULL,
				"organizationId" TEXT NOT NULL,
				"createdAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				"updatedAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				CONSTRAINT "Category_organizationId_fkey" FOREIGN KEY ("organizationId")
					REFERENCES "Organization"("id") ON DELETE CASCADE ON UPDATE CASCADE,
				CONSTRAINT "Category_name_organizationId_type_key" UNIQUE("name", "organizationId", "type")
			)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS "Category_organizationId_idx" ON "Category"("organizationId")`,
		},
	},
	{
		name:      `"Transaction"`,
		dependsOn: []string{`"Organization"`, `"User"`, `"Category"`},
		createSQL: `
			CREATE TABLE IF NOT EXISTS "Transaction" (
				"id" TEXT PRIMARY KEY DEFAULT uuid_generate_v4()::text,
				"type" TEXT NOT NULL,
				"amount" DECIMAL(18,2) NOT NULL,
				"currency" TEXT NOT NULL DEFAULT 'INR',
				"description" TEXT NOT NULL,
				"purpose" TEXT,
				"paymentMethod" TEXT NOT NULL,
				"payerPayee" TEXT NOT NULL,
				"recipientGiver" TEXT,
				"location" TEXT,
				"transactionDate" TIMESTAMP(3) NOT NULL,
				"createdById" TEXT NOT NULL,
				"organizationId" TEXT NOT NULL,
				"categoryId" TEXT,
				"createdAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				"updatedAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				CONSTRAINT "Transaction_organizationId_fkey" FOREIGN KEY ("organizationId")
					REFERENCES "Organization"("id") ON DELETE CASCADE ON UPDATE CASCADE,
				CONSTRAINT "Transaction_createdById_fkey" FOREIGN KEY ("createdById")
					REFERENCES "User"("id") ON UPDATE CASCADE,
				CONSTRAINT "Transaction_categoryId_fkey" FOREIGN KEY ("categoryId")
					REFERENCES "Category"("id") ON DELETE SET NULL ON UPDATE CASCADE
			)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS "Transaction_organizationId_idx" ON "Transaction"("organizationId")`,
			`CREATE INDEX IF NOT EXISTS "Transaction_createdById_idx" ON "Transaction"("createdById")`,
			`CREATE INDEX IF NOT EXISTS "Transaction_transactionDate_idx" ON "Transaction"("transactionDate")`,
			`CREATE INDEX IF NOT EXISTS "Transaction_type_idx" ON "Transaction"("type")`,
		},
	},
	{
		name:      `"Attachment"`,
		dependsOn: []string{`"Transaction"`},
		createSQL: `
			CREATE TABLE IF NOT EXISTS "Attachment" (
				"id" TEXT PRIMARY KEY DEFAULT uuid_generate_v4()::text,
				"filename" TEXT NOT NULL,
				"originalName" TEXT NOT NULL,
				"mimeType" TEXT NOT NULL,
				"size" BIGINT NOT NULL,
				"path" TEXT NOT NULL,
				"transactionId" TEXT NOT NULL,
				"createdAt" TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP,
				CONSTRAINT "Attachment_transactionId_fkey" FOREIGN KEY ("transactionId")
					REFERENCES "Transaction"("id") ON DELETE CASCADE ON UPDATE CASCADE
			)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS "Attachment_transactionId_idx" ON "Attachment"("transactionId")`,
		},
	},
}

// orderedDefinitions returns schemaDefinitions sorted so every table comes
// after the tables it references.
func orderedDefinitions(definitions []tableDefinition) []tableDefinition {
	byName := make(map[string]tableDefinition, len(definitions))
	for _, def := range definitions {
		byName[def.name] = def
	}

	ordered := make([]tableDefinition, 0, len(definitions))
	visited := make(map[string]bool, len(definitions))

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		def, ok := byName[name]
		if !ok {
			return
		}
		for _, dep := range def.dependsOn {
			visit(dep)
		}
		ordered = append(ordered, def)
	}

	for _, def := range definitions {
		visit(def.name)
	}
	return ordered
}
