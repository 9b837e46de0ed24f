package graph

// Schema is the SDL consumed by graphql-go. Resolver methods on Resolver
// are matched to fields case-insensitively.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		productsWithId(categoryId: Int, supplierId: Int, baseProductId: Int): [Product!]!
		productsWithName(name: String!): [Product!]!
		categories: [Category!]!
		getUser(token: String): User!
		customerProfile(token: String): Customer!
		supplierProfile(token: String): Supplier!
	}

	type Mutation {
		registerUser(input: RegisterUserInput!): String!
		registerCustomer(input: RegisterCustomerInput!, token: String): Customer!
		registerSupplier(input: RegisterSupplierInput!, token: String): Supplier!
		login(input: LoginInput!): String!
	}

	type Product {
		productId: Int!
		name: String!
		description: String
		price: Float!
		categoryId: Int
		supplierId: Int
		baseProductId: Int
	}

	type Category {
		categoryId: Int!
		name: String!
		parentCategoryId: Int
	}

	type User {
		userId: Int!
		email: String!
		role: String!
	}

	type Customer {
		customerId: Int!
		userId: Int!
		firstName: String!
		lastName: String!
	}

	type Supplier {
		supplierId: Int!
		userId: Int!
		contactPhone: String!
	}

	input RegisterUserInput {
		email: String!
		password: String!
		role: String!
	}

	input RegisterCustomerInput {
		firstName: String!
		lastName: String!
	}

	input RegisterSupplierInput {
		contactPhone: String!
	}

	input LoginInput {
		email: String!
		password: String!
	}
`
