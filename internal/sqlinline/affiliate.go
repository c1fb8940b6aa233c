package sqlinline

const QSelectAffiliateAccount = `--sql 4e86d1b3-7c05-49f2-a8d6-e21b09c73f54
select user_id, referral_code, available_cents, pending_cents, total_earned_cents, updated_at
from affiliate_accounts
where user_id = $1
limit 1;
`

const QSelectReferrals = `--sql 9f30c5e8-a16d-47b9-82c4-d507e9a31f68
select id, affiliate_id, referred_user_id, commission_cents, created_at
from referrals
where affiliate_id = $1
order by created_at desc
limit $2;
`

// QInsertWithdrawal debits the available balance and records the payout
// request in one statement; it returns nothing when the balance is short.
const QInsertWithdrawal = `--sql 57a9e2d4-08cb-4631-b7f5-c394d16e80a2
with debited as (
    update affiliate_accounts
    set available_cents = available_cents - $3,
        updated_at = now()
    where user_id = $2
      and available_cents >= $3
    returning user_id
)
insert into withdrawals (id, user_id, amount_cents, pix_key, pix_key_type, status, request_date)
select $1, user_id, $3, $4, $5, 'pending', now()
from debited
returning request_date;
`

const QSelectWithdrawalsByUser = `--sql e70b38c6-514f-4a9d-96e8-2fd05c8a17b3
select id, user_id, amount_cents, pix_key, pix_key_type, status, request_date, completed_date, coalesce(failure_reason, '')
from withdrawals
where user_id = $1
order by request_date desc;
`

// QClaimPendingWithdrawal moves the oldest pending payout to processing.
// Skip-locked keeps concurrent workers off the same row.
const QClaimPendingWithdrawal = `--sql 31f6a0d9-8e52-4c47-b1a3-06d97e24c5f8
with next_payout as (
    select id
    from withdrawals
    where status = 'pending'
    order by request_date asc
    for update skip locked
    limit 1
)
update withdrawals
set status = 'processing'
where id in (select id from next_payout)
returning id, user_id, amount_cents, pix_key, pix_key_type;
`

const QCompleteWithdrawal = `--sql ac4d71e5-29b0-4368-85fc-e9d2301b76a4
update withdrawals
set status = 'completed',
    completed_date = now()
where id = $1;
`

// QFailWithdrawal refunds the debited amount alongside marking the failure.
const QFailWithdrawal = `--sql 85e0c3a7-d698-4b25-a0f1-47c8e61d29b0
with failed as (
    update withdrawals
    set status = 'failed',
        failure_reason = $2
    where id = $1
    returning user_id, amount_cents
)
update affiliate_accounts
set available_cents = available_cents + failed.amount_cents,
    updated_at = now()
from failed
where affiliate_accounts.user_id = failed.user_id;
`
