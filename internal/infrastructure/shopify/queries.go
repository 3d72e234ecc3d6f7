package shopify

// Each remote operation is a fixed query string paired with a typed response
// shape in wire.go, so the requested fields and the decoded fields can only
// drift together.

const queryOrders = `
query getRecentOrders {
    orders(first: 50, reverse: true) {
        edges {
            node {
                id
                name
                createdAt
                customer {
                    firstName
                    lastName
                }
                totalPriceSet {
                    shopMoney {
                        amount
                        currencyCode
                    }
                }
                displayFinancialStatus
                displayFulfillmentStatus
                shippingAddress {
                    address1
                    address2
                    city
                    country
                    zip
                }
            }
        }
    }
}`

const queryOrderIDByName = `
query getOrderID($query: String!) {
    orders(first: 1, query: $query) {
        edges {
            node {
                id
            }
        }
    }
}`

const queryOrderSearch = `
query getOrder($id: ID!) {
    order(id: $id) {
        id
        name
        createdAt
        customer {
            firstName
            lastName
        }
        totalPriceSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        displayFinancialStatus
        displayFulfillmentStatus
        shippingAddress {
            address1
            address2
            city
            country
            zip
        }
    }
}`

const queryOrderDetails = `
query getOrderDetails($id: ID!) {
    order(id: $id) {
        id
        name
        createdAt
        displayFinancialStatus
        displayFulfillmentStatus
        lineItems(first: 250) {
            edges {
                node {
                    title
                    name
                    currentQuantity
                    originalUnitPriceSet {
                        shopMoney {
                            amount
                            currencyCode
                        }
                    }
                    product {
                        variants(first: 1) {
                            edges {
                                node {
                                    inventoryItem {
                                        measurement {
                                            weight {
                                                unit
                                                value
                                            }
                                        }
                                    }
                                }
                            }
                        }
                    }
                }
            }
        }
        currentSubtotalPriceSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        currentTotalAdditionalFeesSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        currentTotalTaxSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        currentShippingPriceSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        currentTotalDutiesSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        currentTotalDiscountsSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        currentTotalPriceSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        totalReceivedSet {
            shopMoney {
                amount
                currencyCode
            }
        }
        customer {
            firstName
            lastName
            email
            phone
        }
        shippingAddress {
            address1
            address2
            city
            country
            zip
        }
    }
}`

const queryOrderStatus = `
query getOrders($query: String!) {
    orders(first: 250, query: $query) {
        edges {
            node {
                name
                lineItems(first: 250) {
                    edges {
                        node {
                            name
                            currentQuantity
                            originalUnitPriceSet {
                                shopMoney {
                                    amount
                                    currencyCode
                                }
                            }
                        }
                    }
                }
                currentSubtotalLineItemsQuantity
                currentSubtotalPriceSet {
                    shopMoney {
                        amount
                        currencyCode
                    }
                }
                currentTotalWeight
                paymentGatewayNames
                shippingLines(first: 250) {
                    edges {
                        node {
                            title
                            currentDiscountedPriceSet {
                                shopMoney {
                                    amount
                                    currencyCode
                                }
                            }
                        }
                    }
                }
                fulfillments(first: 250) {
                    name
                    createdAt
                    deliveredAt
                    inTransitAt
                    estimatedDeliveryAt
                    displayStatus
                    trackingInfo(first: 250) {
                        company
                        number
                        url
                    }
                }
                displayFinancialStatus
                returnStatus
                cancellation {
                    staffNote
                }
                cancelReason
                cancelledAt
                createdAt
                closedAt
            }
        }
    }
}`

const queryProductDetails = `
query getProductDetails($query: String) {
    products(first: 1, query: $query) {
        edges {
            node {
                description
                title
                totalInventory
                variants(first: 10) {
                    edges {
                        node {
                            availableForSale
                            barcode
                            compareAtPrice
                            displayName
                            inventoryItem {
                                measurement {
                                    weight {
                                        unit
                                        value
                                    }
                                }
                                requiresShipping
                            }
                            inventoryQuantity
                            price
                            selectedOptions {
                                name
                                optionValue {
                                    name
                                }
                            }
                            sku
                        }
                    }
                }
                variantsCount {
                    count
                }
                vendor
            }
        }
    }
}`

const queryTrackingLink = `
query getTrackingLink($query: String!) {
    orders(first: 1, query: $query) {
        edges {
            node {
                fulfillments(first: 250) {
                    trackingInfo(first: 250) {
                        url
                    }
                }
            }
        }
    }
}`

const queryOnlineStoreURL = `
query getOnlineStoreUrl($query: String!) {
    products(first: 1, query: $query) {
        edges {
            node {
                onlineStoreUrl
            }
        }
    }
}`
